package model

import (
	"time"
)

// MistakeEntry queues an incorrectly answered submission for later review.
// Created in the same transaction as its submission, exactly when the
// grading marked it incorrect.
type MistakeEntry struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	SubmissionID uint       `json:"submission_id" gorm:"not null;uniqueIndex"`
	Submission   Submission `json:"submission,omitempty" gorm:"foreignKey:SubmissionID"`
	Reviewed     bool       `json:"reviewed" gorm:"not null;default:false"`
	Notes        *string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (MistakeEntry) TableName() string { return "mistake_notebook" }
