package practice

import (
	"time"

	"github.com/caseprepared/backend/internal/shared"
	"github.com/livekit/protocol/auth"
)

// Join tokens outlive a typical mock interview but not the day.
const tokenValidity = 2 * time.Hour

// TokenService mints LiveKit join tokens for peer practice rooms.
type TokenService struct {
	apiKey    string
	apiSecret string
	url       string
}

// NewTokenService returns a service, or nil when the LiveKit keys are absent
// so peer practice reads as unconfigured.
func NewTokenService(apiKey, apiSecret, url string) *TokenService {
	if apiKey == "" || apiSecret == "" {
		return nil
	}
	return &TokenService{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		url:       url,
	}
}

func (s *TokenService) URL() string {
	return s.url
}

func (s *TokenService) GenerateToken(identity, room string) (string, error) {
	at := auth.NewAccessToken(s.apiKey, s.apiSecret)

	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     room,
	}

	at.SetIdentity(identity).
		SetValidFor(tokenValidity).
		SetVideoGrant(grant)

	return at.ToJWT()
}

func (s *TokenService) GenerateRoomName() string {
	return "room_" + shared.NewID("")
}
