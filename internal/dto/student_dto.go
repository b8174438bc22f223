package dto

import "time"

type ContributionRequest struct {
	Caption string `form:"caption" binding:"max=255"`
}

type ContributionResponse struct {
	ID        uint      `json:"id"`
	Caption   string    `json:"caption"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

type StudentDashboard struct {
	ActiveQuizTitle string `json:"active_quiz_title,omitempty"`
	HasActiveQuiz   bool   `json:"has_active_quiz"`
	Attempts        int64  `json:"attempts"`
	Contributions   int64  `json:"contributions"`
}

type AdminDashboard struct {
	Users        int64 `json:"users"`
	Quizzes      int64 `json:"quizzes"`
	UsageRecords int64 `json:"usage_records"`
	QuizResults  int64 `json:"quiz_results"`
}

type Certificate struct {
	Username  string    `json:"username"`
	BestScore int       `json:"best_score"`
	Total     int       `json:"total"`
	IssuedAt  time.Time `json:"issued_at"`
}
