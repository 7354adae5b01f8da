package dto

// GradingResult is the structured output of the AI grader. It is produced
// once per grading call and never mutated afterwards.
type GradingResult struct {
	Score            float64  `json:"score"`
	Correct          bool     `json:"correct"`
	Feedback         string   `json:"feedback"`
	CorrectSteps     []string `json:"correctSteps"`
	TopicTags        []string `json:"topicTags"`
	ProcessingTimeMs int      `json:"processingTimeMs"`
	AIProvider       string   `json:"aiProvider"`
}
