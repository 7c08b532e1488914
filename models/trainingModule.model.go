package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingModule is a security awareness training unit with an embedded quiz
type TrainingModule struct {
	gorm.Model
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"default:''"`
	VideoURL        string         `json:"video_url" gorm:"default:''"`
	DurationMinutes int            `json:"duration_minutes" gorm:"default:0"`
	DifficultyLevel string         `json:"difficulty_level" gorm:"default:''"` // Beginner/Intermediate/Advanced
	Category        string         `json:"category" gorm:"default:''"`         // Phishing/Passwords/Social Engineering/etc
	Questions       datatypes.JSON `json:"quiz_questions"`
	PassingScore    int            `json:"passing_score" gorm:"default:70"` // percent, 0-100
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}

// QuestionSet parses and validates the stored quiz questions
func (m *TrainingModule) QuestionSet() ([]Question, error) {
	return ParseQuestions(m.Questions)
}
