package dto

import "time"

type InterviewResponse struct {
	ID           string         `json:"id" example:"int_3c4d5e6f"`
	UserID       string         `json:"user_id" example:"user_9f8e7d6c"`
	TemplateID   string         `json:"template_id" example:"tmpl_5e6f7a8b"`
	Status       string         `json:"status" example:"in-progress"`
	ProgressData map[string]any `json:"progress_data" swaggertype:"object"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type CreateInterviewRequest struct {
	TemplateID string `json:"template_id" example:"tmpl_5e6f7a8b"`
}

type UpdateInterviewRequest struct {
	Status       *string        `json:"status,omitempty" example:"completed"`
	ProgressData map[string]any `json:"progress_data,omitempty" swaggertype:"object"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}

type InterviewListResponse struct {
	Interviews []InterviewResponse `json:"interviews"`
	Total      int                 `json:"total" example:"7"`
	Skip       int                 `json:"skip" example:"0"`
	Limit      int                 `json:"limit" example:"20"`
}
