package credential

import "time"

// TTL bounds for the two credential kinds. Values outside the window clamp
// rather than error so stale frontends keep working.
const (
	SessionTTLDefault = 3600
	sessionTTLMin     = 300
	sessionTTLMax     = 7200

	TURNTTLDefault = 86400
	turnTTLMin     = 300
	turnTTLMax     = 604800
)

func ClampSessionTTL(ttl int) int {
	if ttl <= 0 {
		return SessionTTLDefault
	}
	if ttl < sessionTTLMin {
		return sessionTTLMin
	}
	if ttl > sessionTTLMax {
		return sessionTTLMax
	}
	return ttl
}

func ClampTURNTTL(ttl int) int {
	if ttl <= 0 {
		return TURNTTLDefault
	}
	if ttl < turnTTLMin {
		return turnTTLMin
	}
	if ttl > turnTTLMax {
		return turnTTLMax
	}
	return ttl
}

// ICEServer is one relay/STUN entry, shaped the way Twilio returns them.
type ICEServer struct {
	URL        string   `json:"url,omitempty"`
	URLs       []string `json:"urls,omitempty"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

// TURNCredentials is a scoped set of relay credentials. Fallback marks the
// locally generated STUN-only variant handed out when Twilio is unreachable.
type TURNCredentials struct {
	Username   string
	Password   string
	TTL        int
	Expiration int64
	URLs       []string
	ICEServers []ICEServer
	Fallback   bool
}

// ClientSecret mirrors the client_secret object of an OpenAI Realtime
// session.
type ClientSecret struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at"`
}

// RealtimeSession is the slice of a vendor session passed to browsers. The
// placeholder rung fills the same shape with locally minted values and sets
// Fallback; it never carries a configured API key.
type RealtimeSession struct {
	ID           string       `json:"id"`
	Model        string       `json:"model,omitempty"`
	Voice        string       `json:"voice,omitempty"`
	ClientSecret ClientSecret `json:"client_secret"`
	ExpiresAt    int64        `json:"expires_at,omitempty"`
	Fallback     bool         `json:"fallback,omitempty"`
}

// SessionToken is the envelope every ephemeral key endpoint returns,
// authenticated and demo alike.
type SessionToken struct {
	ID             string
	InterviewID    string
	UserID         string
	QuestionNumber int
	ExpiresAt      time.Time
	TTL            int
	Instructions   string
	Session        RealtimeSession
}
