package model

import (
	"time"

	"github.com/google/uuid"
)

// Contribution is a photo a student uploads as proof of an eco-friendly
// activity. The file itself lives in image storage; only the URL is kept.
type Contribution struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Caption   string    `gorm:"size:255" json:"caption"`
	FileURL   string    `gorm:"type:text;not null" json:"file_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
