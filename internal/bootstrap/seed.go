package bootstrap

import (
	"log"

	"anoa.com/greencampus/internal/model"
	"gorm.io/gorm"
)

// SeedDefaultUsers creates the default admin and student accounts if they
// don't exist yet. Credentials match the original deployment's seed data,
// plaintext included.
func SeedDefaultUsers(db *gorm.DB) error {
	defaults := []model.User{
		{Username: "admin", Password: "admin123", Role: model.RoleAdmin},
		{Username: "student", Password: "student123", Role: model.RoleStudent},
	}

	for _, user := range defaults {
		var count int64
		if err := db.Model(&model.User{}).
			Where("username = ?", user.Username).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			continue
		}

		if err := db.Create(&user).Error; err != nil {
			return err
		}

		log.Printf("seeded default %s account: %s", user.Role, user.Username)
	}

	return nil
}
