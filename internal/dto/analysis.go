package dto

import "time"

type AnalyzeTranscriptRequest struct {
	Transcript  string `json:"transcript" example:"Interviewer: Our client is..."`
	InterviewID string `json:"interview_id,omitempty" example:"int_3c4d5e6f"`
}

type FeedbackCategory struct {
	Title       string `json:"title" example:"Structure"`
	Description string `json:"description" example:"Your framework covered the main profit drivers..."`
}

type TranscriptFeedback struct {
	Structure                FeedbackCategory `json:"structure"`
	Communication            FeedbackCategory `json:"communication"`
	HypothesisDrivenApproach FeedbackCategory `json:"hypothesis_driven_approach"`
	QualitativeAnalysis      FeedbackCategory `json:"qualitative_analysis"`
	Adaptability             FeedbackCategory `json:"adaptability"`
}

type AnalyzeTranscriptResponse struct {
	Feedback    TranscriptFeedback `json:"feedback"`
	GeneratedAt time.Time          `json:"generated_at"`
}
