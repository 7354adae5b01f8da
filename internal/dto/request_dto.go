package dto

// RegisterUserRequest creates a student profile. Credentials are handled by
// an external identity layer; only the profile lives here.
type RegisterUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name" binding:"required"`
	GradeLevel int    `json:"grade_level" binding:"required,min=1,max=12"`
}

// CreateQuestionRequest is for seeding the question bank.
type CreateQuestionRequest struct {
	Subject       string   `json:"subject"`
	Topic         string   `json:"topic" binding:"required"`
	GradeLevel    int      `json:"grade_level" binding:"required,min=1,max=12"`
	QuestionText  string   `json:"question_text" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	SolutionSteps []string `json:"solution_steps"`
	Difficulty    string   `json:"difficulty" binding:"required,oneof=EASY MEDIUM HARD"`
}
