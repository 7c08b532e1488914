package services

import (
	"sat/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeQuizAllCorrect(t *testing.T) {
	questions := standardQuestions()
	answers := map[string]interface{}{
		"1": float64(0),
		"2": float64(2),
		"3": true,
		"4": false,
	}

	result := GradeQuiz(questions, answers, 70)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 4, result.CorrectCount)
	assert.Equal(t, 4, result.TotalCount)
	assert.True(t, result.Passed)
}

func TestGradeQuizPartialFail(t *testing.T) {
	questions := standardQuestions()
	answers := map[string]interface{}{
		"1": float64(0),
		"2": float64(1), // wrong
		"3": true,
		"4": true, // wrong
	}

	result := GradeQuiz(questions, answers, 70)

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 2, result.CorrectCount)
	assert.False(t, result.Passed)
}

func TestGradeQuizExactPassingScore(t *testing.T) {
	questions := standardQuestions()
	answers := map[string]interface{}{
		"1": float64(0),
		"2": float64(2),
		"3": true,
		"4": true, // wrong
	}

	// 3/4 = 75, exactly the passing score
	result := GradeQuiz(questions, answers, 75)

	assert.Equal(t, 75, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeQuizRounding(t *testing.T) {
	questions := []models.Question{
		mcQuestion(1, 0, "a", "b"),
		mcQuestion(2, 0, "a", "b"),
		mcQuestion(3, 0, "a", "b"),
	}
	answers := map[string]interface{}{
		"1": float64(0),
	}

	// 1/3 rounds to 33, 2/3 rounds to 67
	result := GradeQuiz(questions, answers, 70)
	assert.Equal(t, 33, result.Score)

	answers["2"] = float64(0)
	result = GradeQuiz(questions, answers, 70)
	assert.Equal(t, 67, result.Score)
}

func TestGradeQuizZeroQuestions(t *testing.T) {
	result := GradeQuiz(nil, map[string]interface{}{}, 70)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalCount)
	assert.False(t, result.Passed)

	result = GradeQuiz(nil, nil, 0)
	assert.True(t, result.Passed)
}

func TestGradeQuizMissingAnswersCountWrong(t *testing.T) {
	questions := standardQuestions()

	result := GradeQuiz(questions, map[string]interface{}{"3": true}, 70)

	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 25, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuizIgnoresUnknownQuestionIDs(t *testing.T) {
	questions := []models.Question{tfQuestion(1, true)}
	answers := map[string]interface{}{
		"1":  true,
		"99": true,
		"no": false,
	}

	result := GradeQuiz(questions, answers, 100)

	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeQuizWrongTypedAnswers(t *testing.T) {
	questions := []models.Question{
		mcQuestion(1, 1, "a", "b"),
		tfQuestion(2, true),
	}
	answers := map[string]interface{}{
		"1": "b",        // string instead of index
		"2": float64(1), // number instead of bool
	}

	result := GradeQuiz(questions, answers, 50)

	assert.Equal(t, 0, result.CorrectCount)
	assert.False(t, result.Passed)
}

func TestGradeQuizFractionalIndexRejected(t *testing.T) {
	questions := []models.Question{mcQuestion(1, 1, "a", "b")}

	result := GradeQuiz(questions, map[string]interface{}{"1": 1.5}, 50)

	assert.Equal(t, 0, result.CorrectCount)
}
