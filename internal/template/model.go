package template

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caseprepared/backend/internal/shared"
)

// Template is a reusable case definition. Structure holds the per-question
// material keyed "question1".."questionN", each entry an object with title,
// prompt and optional context.
type Template struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	CaseType         string         `gorm:"not null;index" json:"case_type"`
	LeadType         string         `gorm:"not null" json:"lead_type"`
	Difficulty       string         `gorm:"not null;index" json:"difficulty"`
	Company          string         `gorm:"index" json:"company"`
	Industry         string         `gorm:"index" json:"industry"`
	Prompt           string         `gorm:"not null" json:"prompt"`
	Structure        shared.JSONMap `gorm:"type:jsonb;not null" json:"structure"`
	ImageURL         string         `json:"image_url"`
	Title            string         `json:"title"`
	DescriptionShort string         `json:"description_short"`
	DescriptionLong  string         `json:"description_long"`
	Duration         int            `json:"duration"`
	Version          string         `gorm:"default:1.0" json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func (Template) TableName() string {
	return "interview_templates"
}

// Question is one entry of a template's structure.
type Question struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Prompt  string `json:"prompt"`
	Context string `json:"context,omitempty"`
}

// Question extracts question n from the structure. Missing or malformed
// entries report false.
func (t *Template) Question(n int) (Question, bool) {
	raw, ok := t.Structure[questionKey(n)]
	if !ok {
		return Question{}, false
	}
	entry, ok := raw.(map[string]any)
	if !ok {
		return Question{}, false
	}

	q := Question{Number: n}
	if v, ok := entry["title"].(string); ok {
		q.Title = v
	}
	if v, ok := entry["prompt"].(string); ok {
		q.Prompt = v
	}
	if v, ok := entry["context"].(string); ok {
		q.Context = v
	}
	return q, true
}

// Questions returns the structure's questions in order, stopping at the
// first gap.
func (t *Template) Questions() []Question {
	var out []Question
	for n := 1; ; n++ {
		q, ok := t.Question(n)
		if !ok {
			return out
		}
		out = append(out, q)
	}
}

// QuestionCount reports the highest question index present in the structure.
func (t *Template) QuestionCount() int {
	highest := 0
	for key := range t.Structure {
		idx, ok := parseQuestionKey(key)
		if ok && idx > highest {
			highest = idx
		}
	}
	return highest
}

func questionKey(n int) string {
	return fmt.Sprintf("question%d", n)
}

func parseQuestionKey(key string) (int, bool) {
	rest, found := strings.CutPrefix(key, "question")
	if !found {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 1 {
		return 0, false
	}
	return idx, true
}
