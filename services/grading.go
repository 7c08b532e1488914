package services

import (
	"math"
	"sat/models"
	"strconv"
)

// GradeResult is the outcome of scoring one quiz submission
type GradeResult struct {
	Score        int  `json:"score"` // 0-100
	CorrectCount int  `json:"correct_answers"`
	TotalCount   int  `json:"total_questions"`
	Passed       bool `json:"passed"`
}

// GradeQuiz scores a submitted answer set against a module's question set.
// Answers are keyed by question ID (as a string, matching the JSON body the
// player sends). Answers for unknown question IDs are ignored; missing or
// wrong-typed answers count as incorrect. A module with zero questions grades
// to score 0 and passes only when the passing score is 0 or lower.
func GradeQuiz(questions []models.Question, answers map[string]interface{}, passingScore int) GradeResult {
	result := GradeResult{TotalCount: len(questions)}

	if result.TotalCount == 0 {
		result.Passed = passingScore <= 0
		return result
	}

	for _, q := range questions {
		answer, ok := answers[strconv.Itoa(q.ID)]
		if !ok {
			continue
		}
		if answerMatches(&q, answer) {
			result.CorrectCount++
		}
	}

	result.Score = int(math.Round(100 * float64(result.CorrectCount) / float64(result.TotalCount)))
	result.Passed = result.Score >= passingScore
	return result
}

// answerMatches compares one submitted answer against the stored correct
// answer: index equality for multiple_choice, boolean equality for true_false
func answerMatches(q *models.Question, answer interface{}) bool {
	switch q.Kind {
	case models.QuestionMultipleChoice:
		correct, err := q.CorrectIndex()
		if err != nil {
			return false
		}
		// JSON numbers decode as float64
		switch v := answer.(type) {
		case float64:
			return int(v) == correct && v == math.Trunc(v)
		case int:
			return v == correct
		}
		return false
	case models.QuestionTrueFalse:
		correct, err := q.CorrectBool()
		if err != nil {
			return false
		}
		v, ok := answer.(bool)
		return ok && v == correct
	}
	return false
}
