package credential

import (
	"fmt"
	"strings"

	"github.com/caseprepared/backend/internal/template"
)

// BuildInstructions renders the interviewer brief for one question of a
// case. When the template or the question is missing it falls back to a
// generic assistant brief so credential minting never blocks on catalog
// state.
func BuildInstructions(t *template.Template, questionNumber int) string {
	if t == nil {
		return fallbackInstructions(questionNumber)
	}
	q, ok := t.Question(questionNumber)
	if !ok {
		return fallbackInstructions(questionNumber)
	}
	total := t.QuestionCount()

	caseText := t.DescriptionLong
	if caseText == "" {
		caseText = t.Prompt
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an interviewer for a %s case interview about %s in the %s industry.\n\n",
		t.CaseType, t.Company, t.Industry)
	fmt.Fprintf(&b, "CASE: %s\n\n", caseText)
	fmt.Fprintf(&b, "QUESTION %d/%d: %s\n", questionNumber, total, q.Title)
	fmt.Fprintf(&b, "Immediately say \"Welcome to your interview, I am an interviewer from %s. Here is the case prompt for the interview:\n%s\n\n",
		t.Company, q.Prompt)
	if q.Context != "" {
		fmt.Fprintf(&b, "CONTEXT: %s\n\n", q.Context)
	}
	b.WriteString("GUIDELINES:\n")
	b.WriteString("• Guide professionally\n")
	b.WriteString("• Provide hints only when needed\n")
	b.WriteString("• Let candidate work independently\n")
	b.WriteString("• Give constructive feedback\n")
	b.WriteString("• Keep questions concise and to the point\n")
	b.WriteString("• Keep answers concise and to the point\n")
	return b.String()
}

func fallbackInstructions(questionNumber int) string {
	return fmt.Sprintf("You are an assistant for interview question %d. Help the candidate with their case interview.", questionNumber)
}
