package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Question is immutable once created; submissions reference it by ID only.
type Question struct {
	ID               uint                       `gorm:"primarykey" json:"id"`
	Subject          string                     `json:"subject" gorm:"not null;default:'MATH'"`
	Topic            string                     `json:"topic" gorm:"not null"`
	GradeLevel       int                        `json:"grade_level" gorm:"not null;index"`
	QuestionText     string                     `json:"question_text" gorm:"type:text;not null"`
	QuestionImageURL *string                    `json:"question_image_url,omitempty" gorm:"type:text"`
	CorrectAnswer    string                     `json:"-" gorm:"type:text;not null"`
	SolutionSteps    datatypes.JSONSlice[string] `json:"solution_steps,omitempty"`
	Difficulty       string                     `json:"difficulty" gorm:"not null"` // EASY, MEDIUM, HARD
	CreatedAt        time.Time                  `json:"created_at"`
}
