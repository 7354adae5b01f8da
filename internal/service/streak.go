package service

import (
	"time"

	"github.com/tuanvu/snapgrade/internal/model"
)

// AdvanceStreak applies the daily streak transition to a progress record.
// Four cases: first-ever activity starts a streak of 1, repeated activity on
// the same day is a no-op, activity on the day after the last one extends the
// streak, and any larger gap resets it to 1. Dates are compared as calendar
// days in UTC so the whole pipeline shares one notion of "today".
func AdvanceStreak(progress *model.UserProgress, now time.Time) {
	today := toDate(now)

	switch {
	case progress.LastActivityDate == nil:
		progress.CurrentStreak = 1
		if progress.LongestStreak < 1 {
			progress.LongestStreak = 1
		}
	case toDate(*progress.LastActivityDate).Equal(today):
		return
	case toDate(*progress.LastActivityDate).AddDate(0, 0, 1).Equal(today):
		progress.CurrentStreak++
		if progress.CurrentStreak > progress.LongestStreak {
			progress.LongestStreak = progress.CurrentStreak
		}
	default:
		progress.CurrentStreak = 1
	}

	progress.LastActivityDate = &today
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
