package db

import (
	"github.com/Ashwinn11/gutbuddy/internal/models"
	"gorm.io/gorm"
)

type WaterRepository struct {
	database *gorm.DB
}

func NewWaterRepository(database *gorm.DB) *WaterRepository {
	return &WaterRepository{database: database}
}

func (repo *WaterRepository) ListAll() ([]models.WaterLog, error) {
	logs := make([]models.WaterLog, 0)
	if err := repo.database.Order("date ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WaterRepository) Save(entry *models.WaterLog) error {
	return repo.database.Save(entry).Error
}
