package dto

import "time"

type TemplateResponse struct {
	ID               string         `json:"id" example:"tmpl_5e6f7a8b"`
	CaseType         string         `json:"case_type" example:"Market Entry"`
	LeadType         string         `json:"lead_type" example:"Interviewer-led"`
	Difficulty       string         `json:"difficulty" example:"Medium"`
	Company          string         `json:"company,omitempty" example:"McKinsey"`
	Industry         string         `json:"industry,omitempty" example:"Oil & Gas"`
	Prompt           string         `json:"prompt"`
	Structure        map[string]any `json:"structure" swaggertype:"object"`
	ImageURL         string         `json:"image_url,omitempty" example:"https://imagedelivery.net/acct/img123/public"`
	Title            string         `json:"title,omitempty" example:"Premier Oil Profitability Improvement"`
	DescriptionShort string         `json:"description_short,omitempty"`
	DescriptionLong  string         `json:"description_long,omitempty"`
	Duration         int            `json:"duration,omitempty" example:"30"`
	Version          string         `json:"version" example:"1.0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TemplateListItem is the slim listing shape; prompt and structure are only
// returned when fetching a single template.
type TemplateListItem struct {
	ID               string `json:"id" example:"tmpl_5e6f7a8b"`
	CaseType         string `json:"case_type" example:"Market Entry"`
	LeadType         string `json:"lead_type" example:"Interviewer-led"`
	Difficulty       string `json:"difficulty" example:"Medium"`
	Company          string `json:"company,omitempty" example:"McKinsey"`
	Industry         string `json:"industry,omitempty" example:"Oil & Gas"`
	ImageURL         string `json:"image_url,omitempty"`
	Title            string `json:"title,omitempty" example:"Premier Oil Profitability Improvement"`
	DescriptionShort string `json:"description_short,omitempty"`
	Duration         int    `json:"duration,omitempty" example:"30"`
	Version          string `json:"version" example:"1.0"`
}

type CreateTemplateRequest struct {
	CaseType         string         `json:"case_type" example:"Profitability"`
	LeadType         string         `json:"lead_type" example:"Candidate-led"`
	Difficulty       string         `json:"difficulty" example:"Hard"`
	Company          string         `json:"company,omitempty" example:"Bain"`
	Industry         string         `json:"industry,omitempty" example:"Industrial Equipment"`
	Prompt           string         `json:"prompt" example:"Our client is a manufacturer whose software revenue has stalled."`
	Structure        map[string]any `json:"structure" swaggertype:"object"`
	ImageURL         string         `json:"image_url,omitempty"`
	Title            string         `json:"title,omitempty"`
	DescriptionShort string         `json:"description_short,omitempty"`
	DescriptionLong  string         `json:"description_long,omitempty"`
	Duration         int            `json:"duration,omitempty" example:"35"`
	Version          string         `json:"version,omitempty" example:"1.0"`
}

type UpdateTemplateRequest struct {
	CaseType         *string        `json:"case_type,omitempty"`
	LeadType         *string        `json:"lead_type,omitempty"`
	Difficulty       *string        `json:"difficulty,omitempty"`
	Company          *string        `json:"company,omitempty"`
	Industry         *string        `json:"industry,omitempty"`
	Prompt           *string        `json:"prompt,omitempty"`
	Structure        map[string]any `json:"structure,omitempty" swaggertype:"object"`
	ImageURL         *string        `json:"image_url,omitempty"`
	Title            *string        `json:"title,omitempty"`
	DescriptionShort *string        `json:"description_short,omitempty"`
	DescriptionLong  *string        `json:"description_long,omitempty"`
	Duration         *int           `json:"duration,omitempty"`
	Version          *string        `json:"version,omitempty"`
}

type TemplateSearchResponse struct {
	Query     string             `json:"query" example:"market sizing for healthcare"`
	Templates []TemplateListItem `json:"templates"`
}
