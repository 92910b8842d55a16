package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caseprepared/backend/internal/shared"
	"github.com/caseprepared/backend/internal/template"
)

// Service mints the short-lived vendor credentials handed to browsers.
// Session and TURN minting never fail: every vendor problem degrades to a
// locally generated fallback the client can still use.
type Service struct {
	ring     *KeyRing
	realtime *RealtimeClient
	twilio   *TwilioClient
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the vendor clients together. The Twilio client may be
// nil, in which case TURN requests always take the STUN fallback.
func NewService(ring *KeyRing, realtime *RealtimeClient, twilio *TwilioClient, logger *slog.Logger) *Service {
	return &Service{
		ring:     ring,
		realtime: realtime,
		twilio:   twilio,
		logger:   logger,
		now:      time.Now,
	}
}

// SessionParams describes one session token request.
type SessionParams struct {
	InterviewID    string
	UserID         string
	QuestionNumber int
	TTL            int
	Voice          string
	IDPrefix       string
	// SkipRing sends the request straight to the primary key, bypassing
	// rotation. The demo direct-token path uses it.
	SkipRing bool
}

// GenerateSessionToken builds the interviewer brief for the question and
// walks the fallback ladder: rotated ring attempts, one direct attempt with
// the primary key, then a locally minted placeholder session.
func (s *Service) GenerateSessionToken(ctx context.Context, tmpl *template.Template, p SessionParams) *SessionToken {
	ttl := ClampSessionTTL(p.TTL)
	voice := p.Voice
	if voice == "" {
		voice = VoiceInterviewer
	}
	prefix := p.IDPrefix
	if prefix == "" {
		prefix = "sess"
	}
	instructions := BuildInstructions(tmpl, p.QuestionNumber)

	session := s.mintSession(ctx, instructions, voice, ttl, p.SkipRing)

	now := s.now()
	return &SessionToken{
		ID:             fmt.Sprintf("%s_%s_%d", prefix, p.InterviewID, p.QuestionNumber),
		InterviewID:    p.InterviewID,
		UserID:         p.UserID,
		QuestionNumber: p.QuestionNumber,
		ExpiresAt:      now.Add(time.Duration(ttl) * time.Second),
		TTL:            ttl,
		Instructions:   instructions,
		Session:        session,
	}
}

func (s *Service) mintSession(ctx context.Context, instructions, voice string, ttl int, skipRing bool) RealtimeSession {
	if !skipRing {
		for attempt := 0; attempt < s.ring.Len(); attempt++ {
			key, err := s.ring.Acquire(ctx)
			if err != nil {
				break
			}
			session, err := s.realtime.CreateSession(ctx, key, instructions, voice)
			if err == nil {
				return *session
			}
			if errors.Is(err, ErrKeyRejected) {
				s.ring.MarkFailure(key)
			}
			s.logger.Warn("realtime session attempt failed",
				"key", Fingerprint(key),
				"attempt", attempt+1,
				"error", err)
		}
	}

	if key := s.ring.Primary(); key != "" {
		session, err := s.realtime.CreateSession(ctx, key, instructions, voice)
		if err == nil {
			return *session
		}
		s.logger.Warn("direct realtime session attempt failed",
			"key", Fingerprint(key),
			"error", err)
	}

	s.logger.Warn("all realtime session attempts failed, issuing placeholder session")
	return s.placeholderSession(ttl)
}

// placeholderSession fills the vendor session shape with local values. It
// carries no configured API key, only a random secret the client will fail
// closed on.
func (s *Service) placeholderSession(ttl int) RealtimeSession {
	expires := s.now().Add(time.Duration(ttl) * time.Second).Unix()
	return RealtimeSession{
		ID:    shared.NewID("sess_fallback_"),
		Model: realtimeModel,
		ClientSecret: ClientSecret{
			Value:     shared.NewID("ek_fallback_"),
			ExpiresAt: expires,
		},
		ExpiresAt: expires,
		Fallback:  true,
	}
}

// GenerateTURNCredentials asks Twilio for relay credentials and falls back
// to public STUN servers when the vendor is absent or failing.
func (s *Service) GenerateTURNCredentials(ctx context.Context, ttl int) *TURNCredentials {
	ttl = ClampTURNTTL(ttl)
	if s.twilio != nil {
		creds, err := s.twilio.CreateToken(ctx, ttl)
		if err == nil {
			return creds
		}
		s.logger.Warn("twilio token request failed, issuing fallback credentials", "error", err)
	}
	return FallbackTURNCredentials(ttl)
}

// FallbackTURNCredentials returns public STUN servers so WebRTC setup can
// proceed without a relay. Connections behind symmetric NATs may still fail.
func FallbackTURNCredentials(ttl int) *TURNCredentials {
	urls := []string{
		"stun:stun.l.google.com:19302",
		"stun:stun1.l.google.com:19302",
		"stun:stun2.l.google.com:19302",
	}
	return &TURNCredentials{
		Username:   "demo_user",
		Password:   "demo_credential",
		TTL:        ttl,
		Expiration: time.Now().Add(time.Duration(ttl) * time.Second).Unix(),
		URLs:       urls,
		ICEServers: []ICEServer{{URLs: urls}},
		Fallback:   true,
	}
}
