package model

import (
	"time"
)

// UserProgress is the single mutable aggregate per user. Invariants:
// TotalXP >= 0 and LongestStreak >= CurrentStreak >= 0, at most one row per
// user. Concurrent submissions serialize on this row (SELECT ... FOR UPDATE).
type UserProgress struct {
	UserID           uint       `gorm:"primarykey" json:"user_id"`
	TotalXP          int        `json:"total_xp" gorm:"not null;default:0"`
	CurrentStreak    int        `json:"current_streak" gorm:"not null;default:0"`
	LongestStreak    int        `json:"longest_streak" gorm:"not null;default:0"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty" gorm:"type:date"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
