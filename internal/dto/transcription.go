package dto

// AssemblyTokenResponse carries a temporary AssemblyAI realtime token.
type AssemblyTokenResponse struct {
	Token string `json:"token" example:"temp_tok_4f3a"`
}
