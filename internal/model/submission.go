package model

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is append-only: one row per grading attempt, never updated.
type Submission struct {
	ID               uint                        `gorm:"primarykey" json:"id"`
	UserID           uint                        `json:"user_id" gorm:"not null;index"`
	QuestionID       uint                        `json:"question_id" gorm:"not null;index"`
	Question         Question                    `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	OriginalImageURL string                      `json:"original_image_url" gorm:"type:text;not null"`
	AIScore          float64                     `json:"ai_score"`
	IsCorrect        bool                        `json:"is_correct"`
	AIFeedback       string                      `json:"ai_feedback" gorm:"type:text"`
	CorrectSteps     datatypes.JSONSlice[string] `json:"correct_steps"`
	TopicTags        datatypes.JSONSlice[string] `json:"topic_tags"`
	ProcessingTimeMs int                         `json:"processing_time_ms"`
	AIProvider       string                      `json:"ai_provider"`
	CreatedAt        time.Time                   `json:"created_at"`
}
