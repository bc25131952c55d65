package seeder

import (
	"errors"
	"time"

	"user-registry/model"
	"user-registry/util"

	"gorm.io/gorm"
)

// SeedDemoUsers inserts a small demo fixture for local development.
// Existing usernames are left untouched, so the seeder is idempotent.
func SeedDemoUsers(db *gorm.DB) {
	dob := time.Date(1995, time.March, 12, 0, 0, 0, 0, time.UTC)

	users := []model.User{
		{
			Username: "tonsan1",
			Email:    "test@abv.bg",
			Profile:  &model.Profile{FirstName: "Tony", LastName: "K", DateOfBirth: dob},
		},
		{
			Username: "tonsan2",
			Email:    "test2@abv.bg",
			Profile:  &model.Profile{FirstName: "Tony", LastName: "KJJ", DateOfBirth: dob},
		},
	}

	util.Logger.Info().Msg("seeding demo users")

	for _, user := range users {
		var existing model.User
		err := db.Where("username = ?", user.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			util.Logger.Error().Err(err).Str("username", user.Username).Msg("seed lookup failed")
			continue
		}
		if err := db.Create(&user).Error; err != nil {
			util.Logger.Error().Err(err).Str("username", user.Username).Msg("seed insert failed")
		}
	}

	util.Logger.Info().Msg("demo user seeding completed")
}
