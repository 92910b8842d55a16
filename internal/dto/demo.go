package dto

type DemoQuestion struct {
	Number int    `json:"number" example:"1"`
	Title  string `json:"title" example:"Opening"`
	Prompt string `json:"prompt"`
}

// DemoTemplateResponse carries a demo case. List endpoints omit Questions,
// detail endpoints include them.
type DemoTemplateResponse struct {
	ID               string         `json:"id" example:"11111111-1111-1111-1111-111111111111"`
	CaseType         string         `json:"case_type" example:"Market Entry"`
	LeadType         string         `json:"lead_type" example:"Interviewer-led"`
	Difficulty       string         `json:"difficulty" example:"Medium"`
	Company          string         `json:"company" example:"McKinsey"`
	Industry         string         `json:"industry" example:"Oil & Gas"`
	Title            string         `json:"title"`
	DescriptionShort string         `json:"description_short"`
	DescriptionLong  string         `json:"description_long"`
	ImageURL         string         `json:"image_url"`
	Duration         int            `json:"duration" example:"30"`
	Questions        []DemoQuestion `json:"questions,omitempty"`
}

type DemoProgress struct {
	CurrentQuestion    int     `json:"current_question" example:"1"`
	QuestionsCompleted []int   `json:"questions_completed"`
	Status             string  `json:"status" example:"in-progress"`
	StartedAt          string  `json:"started_at,omitempty"`
	CompletedAt        *string `json:"completed_at"`
}

type DemoInterviewResponse struct {
	ID           string                `json:"id" example:"44444444-4444-4444-4444-444444444444"`
	TemplateID   string                `json:"template_id" example:"11111111-1111-1111-1111-111111111111"`
	Status       string                `json:"status" example:"in-progress"`
	ProgressData DemoProgress          `json:"progress_data"`
	StartedAt    string                `json:"started_at,omitempty"`
	CompletedAt  *string               `json:"completed_at"`
	Template     *DemoTemplateResponse `json:"template,omitempty"`
	Message      string                `json:"message,omitempty"`
}

type CompleteQuestionRequest struct {
	CaseType       string `json:"case_type" example:"market-entry"`
	QuestionNumber int    `json:"question_number" example:"1"`
}

// DirectTokenResponse is the trimmed shape of the keyless demo token
// endpoint.
type DirectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at" example:"1735689600"`
}
