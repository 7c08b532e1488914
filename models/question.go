package models

import (
	"encoding/json"
	"fmt"
)

// Question kinds
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionTrueFalse      = "true_false"
)

// Question is one quiz question inside a training module. CorrectAnswer is an
// option index for multiple_choice and a boolean for true_false.
type Question struct {
	ID            int             `json:"id"`
	Question      string          `json:"question"`
	Kind          string          `json:"type"`
	Options       []string        `json:"options,omitempty"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   string          `json:"explanation,omitempty"`
}

// CorrectIndex returns the correct option index for a multiple_choice question
func (q *Question) CorrectIndex() (int, error) {
	var idx int
	if err := json.Unmarshal(q.CorrectAnswer, &idx); err != nil {
		return 0, fmt.Errorf("question %d: correct_answer is not an index: %w", q.ID, err)
	}
	return idx, nil
}

// CorrectBool returns the correct boolean for a true_false question
func (q *Question) CorrectBool() (bool, error) {
	var b bool
	if err := json.Unmarshal(q.CorrectAnswer, &b); err != nil {
		return false, fmt.Errorf("question %d: correct_answer is not a boolean: %w", q.ID, err)
	}
	return b, nil
}

// ParseQuestions decodes a question set from its stored JSON form and validates
// it, assigning ordinal IDs to questions that do not carry one. Malformed
// catalog data is rejected here instead of surfacing at grading time.
func ParseQuestions(raw []byte) ([]Question, error) {
	if len(raw) == 0 {
		return []Question{}, nil
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("invalid quiz questions: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		if q.ID == 0 {
			q.ID = i + 1
		}

		switch q.Kind {
		case QuestionMultipleChoice:
			if len(q.Options) < 2 {
				return nil, fmt.Errorf("question %d: multiple_choice needs at least 2 options", q.ID)
			}
			idx, err := q.CorrectIndex()
			if err != nil {
				return nil, err
			}
			if idx < 0 || idx >= len(q.Options) {
				return nil, fmt.Errorf("question %d: correct_answer index %d out of range", q.ID, idx)
			}
		case QuestionTrueFalse:
			if _, err := q.CorrectBool(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("question %d: unknown type %q", q.ID, q.Kind)
		}
	}

	return questions, nil
}

// SanitizedQuestion is the employee-facing view of a question, without the
// correct answer or explanation.
type SanitizedQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Kind     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
}

// Sanitize strips answers from a question set before sending it to employees
func Sanitize(questions []Question) []SanitizedQuestion {
	out := make([]SanitizedQuestion, len(questions))
	for i, q := range questions {
		out[i] = SanitizedQuestion{
			ID:       q.ID,
			Question: q.Question,
			Kind:     q.Kind,
			Options:  q.Options,
		}
	}
	return out
}
