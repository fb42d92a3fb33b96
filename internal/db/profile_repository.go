package db

import (
	"errors"

	"github.com/Ashwinn11/gutbuddy/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Load returns the single profile row, creating it if the seed row is
// somehow missing.
func (repo *ProfileRepository) Load() (models.Profile, error) {
	var profile models.Profile
	err := repo.database.First(&profile, models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{ID: models.ProfileID, Name: "Gut Buddy"}
		if err := repo.database.Create(&profile).Error; err != nil {
			return models.Profile{}, err
		}
		return profile, nil
	}
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile *models.Profile) error {
	return repo.database.Save(profile).Error
}
