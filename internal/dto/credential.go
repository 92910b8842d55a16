package dto

// ClientSecret mirrors the client_secret object of the OpenAI Realtime
// sessions API.
type ClientSecret struct {
	Value     string `json:"value" example:"ek_abc123"`
	ExpiresAt int64  `json:"expires_at" example:"1735689600"`
}

// RealtimeSession is the slice of an OpenAI Realtime session surfaced to
// clients. Fallback sessions fill the same shape with a locally minted
// secret and set Fallback.
type RealtimeSession struct {
	ID           string       `json:"id" example:"sess_abc123"`
	Model        string       `json:"model,omitempty" example:"gpt-4o-mini-realtime-preview"`
	Voice        string       `json:"voice,omitempty" example:"alloy"`
	ClientSecret ClientSecret `json:"client_secret"`
	ExpiresAt    int64        `json:"expires_at,omitempty" example:"1735689600"`
	Fallback     bool         `json:"fallback,omitempty" example:"false"`
}

// SessionTokenResponse is the envelope returned by every ephemeral key
// endpoint, authenticated and demo alike.
type SessionTokenResponse struct {
	ID              string          `json:"id" example:"sess_int_3c4d5e6f_1"`
	InterviewID     string          `json:"interviewId" example:"int_3c4d5e6f"`
	UserID          string          `json:"userId" example:"user_1a2b3c4d"`
	QuestionNumber  int             `json:"questionNumber" example:"1"`
	ExpiresAt       string          `json:"expiresAt" example:"2025-01-01T12:00:00Z"`
	TTL             int             `json:"ttl" example:"3600"`
	Instructions    string          `json:"instructions"`
	RealtimeSession RealtimeSession `json:"realtimeSession"`
}

type ICEServer struct {
	URL        string   `json:"url,omitempty" example:"turn:global.turn.twilio.com:3478?transport=udp"`
	URLs       []string `json:"urls,omitempty"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

type TURNCredentialsResponse struct {
	Username   string      `json:"username,omitempty"`
	Password   string      `json:"password,omitempty"`
	TTL        int         `json:"ttl" example:"86400"`
	Expiration int64       `json:"expiration,omitempty" example:"1735689600"`
	URLs       []string    `json:"urls,omitempty"`
	ICEServers []ICEServer `json:"ice_servers"`
	Fallback   bool        `json:"fallback,omitempty" example:"false"`
}

// WebRTCTURNResponse is the reduced shape the authenticated WebRTC endpoint
// returns.
type WebRTCTURNResponse struct {
	ICEServers []ICEServer `json:"iceServers"`
	TTL        int         `json:"ttl" example:"86400"`
}

type InterviewCredentialsResponse struct {
	TURNCredentials TURNCredentialsResponse `json:"turn_credentials"`
	SessionToken    SessionTokenResponse    `json:"session_token"`
}

type EphemeralKeyRequest struct {
	InterviewID    string `json:"interview_id" example:"int_3c4d5e6f"`
	QuestionNumber int    `json:"question_number" example:"1"`
	TTL            int    `json:"ttl,omitempty" example:"3600"`
}
