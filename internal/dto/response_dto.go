package dto

import "time"

// SubmissionResponse is the composite result of one end-to-end grading run:
// the persisted submission plus the progress state it produced.
type SubmissionResponse struct {
	SubmissionID     uint     `json:"submission_id"`
	Score            float64  `json:"score"`
	Correct          bool     `json:"correct"`
	Feedback         string   `json:"feedback"`
	CorrectSteps     []string `json:"correct_steps"`
	TopicTags        []string `json:"topic_tags"`
	XPEarned         int      `json:"xp_earned"`
	TotalXP          int      `json:"total_xp"`
	CurrentStreak    int      `json:"current_streak"`
	ProcessingTimeMs int      `json:"processing_time_ms"`
}

// SubmissionSummaryDTO is the read model for history and single-submission
// lookups.
type SubmissionSummaryDTO struct {
	ID               uint      `json:"id"`
	QuestionID       uint      `json:"question_id"`
	QuestionText     string    `json:"question_text"`
	OriginalImageURL string    `json:"original_image_url"`
	Score            float64   `json:"score"`
	Correct          bool      `json:"correct"`
	Feedback         string    `json:"feedback"`
	CorrectSteps     []string  `json:"correct_steps"`
	TopicTags        []string  `json:"topic_tags"`
	CreatedAt        time.Time `json:"created_at"`
}

// ProgressDTO aggregates the gamification state with submission counters.
type ProgressDTO struct {
	TotalXP            int     `json:"total_xp"`
	CurrentStreak      int     `json:"current_streak"`
	LongestStreak      int     `json:"longest_streak"`
	TotalSubmissions   int     `json:"total_submissions"`
	CorrectSubmissions int     `json:"correct_submissions"`
	Accuracy           float64 `json:"accuracy"`
}

// MistakeDTO is one unreviewed mistake-notebook entry.
type MistakeDTO struct {
	ID           uint      `json:"id"`
	SubmissionID uint      `json:"submission_id"`
	QuestionText string    `json:"question_text"`
	Topic        string    `json:"topic"`
	Reviewed     bool      `json:"reviewed"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuestionDTO omits the correct answer; students never see it before grading.
type QuestionDTO struct {
	ID               uint    `json:"id"`
	Subject          string  `json:"subject"`
	Topic            string  `json:"topic"`
	GradeLevel       int     `json:"grade_level"`
	QuestionText     string  `json:"question_text"`
	QuestionImageURL *string `json:"question_image_url,omitempty"`
	Difficulty       string  `json:"difficulty"`
}

// UserResponse is returned on profile registration.
type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	GradeLevel int       `json:"grade_level"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
