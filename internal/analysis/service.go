package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/caseprepared/backend/internal/dto"
)

const systemPrompt = "You are an expert interview coach that provides detailed, structured feedback on interview performance."

const promptFormat = `Analyze the following interview transcript and provide feedback in these five categories:

1. Structure: Evaluate the problem-solving approach
2. Communication: Assess presence, clarity and impact
3. Hypothesis-Driven Approach: Evaluate early structuring and hypothesis formation
4. Qualitative Analysis: Assess business judgment and thinking
5. Adaptability: Evaluate how they respond to information and guidance

For each category, provide:
- A title/header that summarizes what they did well or need to improve
- A detailed description of your analysis

Transcript:
%s

Format your response as a JSON object with the following structure:
{
    "structure": {
        "title": "Title summarizing structure strengths/weaknesses",
        "description": "Detailed structure analysis"
    },
    "communication": {
        "title": "Title summarizing communication strengths/weaknesses",
        "description": "Detailed communication analysis"
    },
    "hypothesis_driven_approach": {
        "title": "Title summarizing hypothesis approach strengths/weaknesses",
        "description": "Detailed hypothesis approach analysis"
    },
    "qualitative_analysis": {
        "title": "Title summarizing qualitative analysis strengths/weaknesses",
        "description": "Detailed qualitative analysis assessment"
    },
    "adaptability": {
        "title": "Title summarizing adaptability strengths/weaknesses",
        "description": "Detailed adaptability analysis"
    }
}

Ensure you provide specific, actionable feedback for each category.`

// ChatCompleter is the strict-JSON chat surface the service needs.
// *credential.ChatClient satisfies it.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, system, user string) ([]byte, error)
}

// Service turns interview transcripts into structured coaching feedback.
type Service struct {
	chat   ChatCompleter
	logger *slog.Logger
}

func NewService(chat ChatCompleter, logger *slog.Logger) *Service {
	return &Service{
		chat:   chat,
		logger: logger,
	}
}

// Analyze asks the model for feedback in the five fixed categories. A
// category the model leaves out is replaced with a neutral stub rather than
// failing the whole response.
func (s *Service) Analyze(ctx context.Context, transcript string) (*dto.TranscriptFeedback, error) {
	raw, err := s.chat.CompleteJSON(ctx, systemPrompt, fmt.Sprintf(promptFormat, transcript))
	if err != nil {
		return nil, err
	}

	var parsed map[string]dto.FeedbackCategory
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}

	return &dto.TranscriptFeedback{
		Structure:                s.category(parsed, "structure"),
		Communication:            s.category(parsed, "communication"),
		HypothesisDrivenApproach: s.category(parsed, "hypothesis_driven_approach"),
		QualitativeAnalysis:      s.category(parsed, "qualitative_analysis"),
		Adaptability:             s.category(parsed, "adaptability"),
	}, nil
}

func (s *Service) category(parsed map[string]dto.FeedbackCategory, key string) dto.FeedbackCategory {
	cat, ok := parsed[key]
	if !ok || (cat.Title == "" && cat.Description == "") {
		s.logger.Warn("analysis response missing category", "category", key)
		return dto.FeedbackCategory{
			Title:       "Feedback unavailable",
			Description: "The analysis did not produce feedback for this category.",
		}
	}
	return cat
}
