package db

import (
	"github.com/Ashwinn11/gutbuddy/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

// ListNewestFirst returns the full event collection in the engine's
// canonical order: newest timestamp first, id as tie-breaker.
func (repo *EventRepository) ListNewestFirst() ([]models.Event, error) {
	events := make([]models.Event, 0)
	if err := repo.database.Order("timestamp DESC, id DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventRepository) Save(event *models.Event) error {
	return repo.database.Save(event).Error
}

func (repo *EventRepository) DeleteByID(id string) error {
	return repo.database.Delete(&models.Event{}, "id = ?", id).Error
}
