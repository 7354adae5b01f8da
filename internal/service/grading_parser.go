package service

import (
	"encoding/json"
	"strings"

	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/dto"
)

// ParseGradingResponse turns the raw model output into a GradingResult.
// Models routinely wrap the JSON payload in a markdown fence, with or without
// a language tag, so both are stripped before decoding. score, correct and
// feedback are required; correctSteps and topicTags default to empty lists
// when absent or malformed. No range check is applied to the score here.
func ParseGradingResponse(raw string) (*dto.GradingResult, error) {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[3:]
		// Drop a language tag like "json" if the fence carries one.
		if i := strings.IndexByte(cleaned, '\n'); i >= 0 && !strings.ContainsAny(cleaned[:i], "{[") {
			cleaned = cleaned[i+1:]
		}
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-3]
	}
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Score        *float64        `json:"score"`
		Correct      *bool           `json:"correct"`
		Feedback     *string         `json:"feedback"`
		CorrectSteps json.RawMessage `json:"correctSteps"`
		TopicTags    json.RawMessage `json:"topicTags"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, apperror.NewAIGrading("failed to parse AI grading response", raw, err)
	}
	if payload.Score == nil || payload.Correct == nil || payload.Feedback == nil {
		return nil, apperror.NewAIGrading("AI grading response is missing required fields", raw, nil)
	}

	result := &dto.GradingResult{
		Score:        *payload.Score,
		Correct:      *payload.Correct,
		Feedback:     *payload.Feedback,
		CorrectSteps: decodeStringList(payload.CorrectSteps),
		TopicTags:    decodeStringList(payload.TopicTags),
	}
	return result, nil
}

func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
