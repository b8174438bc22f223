package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	// Stored in plaintext for compatibility with accounts seeded by the
	// original deployment. Known weakness; changing it requires a versioned
	// data migration.
	Password  string    `gorm:"size:50;not null" json:"-"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
