package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/tuanvu/snapgrade/config"
	"google.golang.org/api/option"
)

// gradingTimeout bounds the whole grading call, image fetch included.
const gradingTimeout = 60 * time.Second

const geminiProvider = "GEMINI_1_5_FLASH"

// GraderService sends a student's photographed work to the AI grader and
// returns the raw model response. Parsing is the caller's concern.
type GraderService interface {
	Grade(ctx context.Context, imageURL, questionText, correctAnswer string, gradeLevel int) (string, error)
	Provider() string
}

type geminiGraderService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGraderService(cfg *config.Config) (GraderService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GraderService will be non-functional.")
		return &geminiGraderService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiGraderService{client: model, cfg: cfg}, nil
}

func (s *geminiGraderService) Provider() string { return geminiProvider }

func fetchImageData(ctx context.Context, imageURL string) ([]byte, string, error) {
	if imageURL == "" {
		return nil, "", fmt.Errorf("image URL is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request for %s: %w", imageURL, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image from URL %s: %w", imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image (status %d) from URL %s", resp.StatusCode, imageURL)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data from URL %s: %w", imageURL, err)
	}

	contentType := resp.Header.Get("Content-Type")
	var mimeType string
	if contentType != "" {
		parsedMime, _, parseErr := mime.ParseMediaType(contentType)
		if parseErr == nil && strings.HasPrefix(parsedMime, "image/") {
			mimeType = parsedMime
		}
	}
	if mimeType == "" {
		ext := filepath.Ext(imageURL)
		mimeType = mime.TypeByExtension(ext)
		if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
			log.Warn().Str("url", imageURL).Str("ext", ext).Msg("Could not determine valid MIME type from extension or Content-Type.")
			return imageData, "", fmt.Errorf("unsupported or undeterminable image MIME type for %s", imageURL)
		}
	}
	return imageData, mimeType, nil
}

func buildGradingPrompt(questionText, correctAnswer string, gradeLevel int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are an expert math teacher for Grade %d students. ", gradeLevel))
	b.WriteString("You grade student work strictly but fairly. Always respond with valid JSON only, no additional text.\n\n")
	b.WriteString(fmt.Sprintf("Grade this Grade %d math problem:\n\n", gradeLevel))
	b.WriteString(fmt.Sprintf("Question: %s\n", questionText))
	b.WriteString(fmt.Sprintf("Correct Answer: %s\n\n", correctAnswer))
	b.WriteString("Analyze the student's handwritten work in the image and provide:\n")
	b.WriteString("1. A score out of 10\n")
	b.WriteString("2. Whether the answer is correct (true/false)\n")
	b.WriteString("3. Detailed feedback on what they did right or wrong\n")
	b.WriteString("4. Step-by-step correct solution\n")
	b.WriteString("5. Topic tags (e.g., [\"algebra\", \"equations\"])\n\n")
	b.WriteString("Respond ONLY with valid JSON in this exact format:\n")
	b.WriteString(`{
  "score": 8.5,
  "correct": true,
  "feedback": "Your work is mostly correct...",
  "correctSteps": ["Step 1: ...", "Step 2: ..."],
  "topicTags": ["algebra", "linear equations"]
}`)
	return b.String()
}

// Grade fetches the stored work image and asks Gemini to score it against the
// question. The raw response text is returned unparsed. There is no retry;
// failures propagate to the caller.
func (s *geminiGraderService) Grade(ctx context.Context, imageURL, questionText, correctAnswer string, gradeLevel int) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, gradingTimeout)
	defer cancel()

	imageData, mimeType, err := fetchImageData(ctx, imageURL)
	if err != nil {
		log.Error().Err(err).Str("imageURL", imageURL).Msg("Failed to fetch submission image for grading")
		return "", err
	}

	parts := []genai.Part{
		genai.ImageData(strings.TrimPrefix(mimeType, "image/"), imageData),
		genai.Text(buildGradingPrompt(questionText, correctAnswer, gradeLevel)),
	}

	resp, err := s.client.GenerateContent(ctx, parts...)
	if err != nil {
		log.Error().Err(err).Int("gradeLevel", gradeLevel).Msg("Gemini API error during grading")
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}

	return fullResponseText, nil
}
