package dto

type PracticeRoomResponse struct {
	Room  string `json:"room" example:"room_7a8b9c0d"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	URL   string `json:"url,omitempty" example:"wss://practice.livekit.cloud"`
}
