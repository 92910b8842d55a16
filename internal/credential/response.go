package credential

import (
	"time"

	"github.com/caseprepared/backend/internal/dto"
)

// Response converts the token into the wire envelope shared by the
// authenticated and demo endpoints.
func (t *SessionToken) Response() dto.SessionTokenResponse {
	return dto.SessionTokenResponse{
		ID:              t.ID,
		InterviewID:     t.InterviewID,
		UserID:          t.UserID,
		QuestionNumber:  t.QuestionNumber,
		ExpiresAt:       t.ExpiresAt.UTC().Format(time.RFC3339),
		TTL:             t.TTL,
		Instructions:    t.Instructions,
		RealtimeSession: t.Session.Response(),
	}
}

func (s RealtimeSession) Response() dto.RealtimeSession {
	return dto.RealtimeSession{
		ID:    s.ID,
		Model: s.Model,
		Voice: s.Voice,
		ClientSecret: dto.ClientSecret{
			Value:     s.ClientSecret.Value,
			ExpiresAt: s.ClientSecret.ExpiresAt,
		},
		ExpiresAt: s.ExpiresAt,
		Fallback:  s.Fallback,
	}
}

// Response converts TURN credentials into the full wire shape used by the
// demo and interview endpoints.
func (c *TURNCredentials) Response() dto.TURNCredentialsResponse {
	return dto.TURNCredentialsResponse{
		Username:   c.Username,
		Password:   c.Password,
		TTL:        c.TTL,
		Expiration: c.Expiration,
		URLs:       c.URLs,
		ICEServers: iceServersResponse(c.ICEServers),
		Fallback:   c.Fallback,
	}
}

// WebRTCResponse converts TURN credentials into the reduced shape the
// authenticated WebRTC endpoint returns.
func (c *TURNCredentials) WebRTCResponse() dto.WebRTCTURNResponse {
	return dto.WebRTCTURNResponse{
		ICEServers: iceServersResponse(c.ICEServers),
		TTL:        c.TTL,
	}
}

func iceServersResponse(servers []ICEServer) []dto.ICEServer {
	out := make([]dto.ICEServer, len(servers))
	for i, s := range servers {
		out[i] = dto.ICEServer{
			URL:        s.URL,
			URLs:       s.URLs,
			Username:   s.Username,
			Credential: s.Credential,
		}
	}
	return out
}
