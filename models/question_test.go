package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestionsValid(t *testing.T) {
	raw := []byte(`[
		{"id": 1, "question": "What is phishing?", "type": "multiple_choice",
		 "options": ["an attack", "a sport"], "correct_answer": 0, "explanation": "social engineering"},
		{"id": 2, "question": "MFA helps.", "type": "true_false", "correct_answer": true}
	]`)

	questions, err := ParseQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	idx, err := questions[0].CorrectIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	b, err := questions[1].CorrectBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestParseQuestionsAssignsOrdinalIDs(t *testing.T) {
	raw := []byte(`[
		{"question": "q1", "type": "true_false", "correct_answer": false},
		{"question": "q2", "type": "true_false", "correct_answer": true}
	]`)

	questions, err := ParseQuestions(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, 2, questions[1].ID)
}

func TestParseQuestionsEmpty(t *testing.T) {
	questions, err := ParseQuestions(nil)
	require.NoError(t, err)
	assert.Empty(t, questions)

	questions, err = ParseQuestions([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseQuestionsRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"unknown type", `[{"question": "q", "type": "essay", "correct_answer": 0}]`},
		{"too few options", `[{"question": "q", "type": "multiple_choice", "options": ["only"], "correct_answer": 0}]`},
		{"index out of range", `[{"question": "q", "type": "multiple_choice", "options": ["a", "b"], "correct_answer": 5}]`},
		{"negative index", `[{"question": "q", "type": "multiple_choice", "options": ["a", "b"], "correct_answer": -1}]`},
		{"non-bool true_false", `[{"question": "q", "type": "true_false", "correct_answer": 1}]`},
		{"non-index multiple_choice", `[{"question": "q", "type": "multiple_choice", "options": ["a", "b"], "correct_answer": "a"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuestions([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestSanitizeStripsAnswers(t *testing.T) {
	raw := []byte(`[
		{"id": 7, "question": "q", "type": "multiple_choice", "options": ["a", "b"],
		 "correct_answer": 1, "explanation": "because"}
	]`)

	questions, err := ParseQuestions(raw)
	require.NoError(t, err)

	sanitized := Sanitize(questions)
	require.Len(t, sanitized, 1)
	assert.Equal(t, 7, sanitized[0].ID)
	assert.Equal(t, "q", sanitized[0].Question)
	assert.Equal(t, []string{"a", "b"}, sanitized[0].Options)
}
