package db

import (
	"github.com/Ashwinn11/gutbuddy/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) ListNewestFirst() ([]models.MealEntry, error) {
	meals := make([]models.MealEntry, 0)
	if err := repo.database.Order("timestamp DESC, id DESC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) Save(meal *models.MealEntry) error {
	return repo.database.Save(meal).Error
}

func (repo *MealRepository) DeleteByID(id string) error {
	return repo.database.Delete(&models.MealEntry{}, "id = ?", id).Error
}
