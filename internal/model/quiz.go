package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a set of questions authored by an admin. At most one quiz is
// active at any time; activation of a new quiz deactivates all others
// inside a single transaction.
type Quiz struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	IsActive  bool           `gorm:"not null;default:false;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Questions []QuizQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	QuizID  uint   `gorm:"not null;index" json:"quiz_id"`
	Text    string `gorm:"type:text;not null" json:"text"`
	OptionA string `gorm:"size:255;not null" json:"option_a"`
	OptionB string `gorm:"size:255;not null" json:"option_b"`
	OptionC string `gorm:"size:255;not null" json:"option_c"`
	OptionD string `gorm:"size:255;not null" json:"option_d"`
	// Single-letter code A-D, hidden from student-facing JSON.
	CorrectAnswer string `gorm:"size:1;not null" json:"-"`
}

// IsCorrect reports whether the submitted option matches the correct
// answer. The comparison is exact and case-sensitive.
func (q *QuizQuestion) IsCorrect(selected string) bool {
	return selected == q.CorrectAnswer
}

type QuizResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	QuizID    uint      `gorm:"not null;index" json:"quiz_id"`
	Quiz      Quiz      `json:"-"`
	Score     int       `gorm:"not null" json:"score"`
	Total     int       `gorm:"not null" json:"total"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
