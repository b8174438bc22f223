package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateQuizRequest carries the authoring form's parallel arrays: element i
// of every slice describes question i. The service rejects length mismatches.
type CreateQuizRequest struct {
	Title          string   `json:"title" form:"title" binding:"required,max=200"`
	Questions      []string `json:"questions" form:"questions" binding:"required,min=1"`
	OptionA        []string `json:"option_a" form:"option_a" binding:"required"`
	OptionB        []string `json:"option_b" form:"option_b" binding:"required"`
	OptionC        []string `json:"option_c" form:"option_c" binding:"required"`
	OptionD        []string `json:"option_d" form:"option_d" binding:"required"`
	CorrectAnswers []string `json:"correct_answers" form:"correct_answers" binding:"required"`
}

// QuestionView is a question as shown to students: no correct answer.
type QuestionView struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}

type ActiveQuizResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Questions []QuestionView `json:"questions"`
}

// AttemptRequest maps question ID (decimal string) to the selected
// option letter. Unanswered questions are simply absent.
type AttemptRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

type AttemptResponse struct {
	QuizID uint `json:"quiz_id"`
	Score  int  `json:"score"`
	Total  int  `json:"total"`
}

type TopScorer struct {
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
}

type ResultEntry struct {
	ID        uint      `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	QuizID    uint      `json:"quiz_id"`
	QuizTitle string    `json:"quiz_title"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
