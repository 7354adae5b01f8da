package model

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null"`
	FullName        string    `json:"full_name" gorm:"not null"`
	GradeLevel      int       `json:"grade_level" gorm:"not null"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
