package db

import "gorm.io/gorm"

type Repositories struct {
	Accounts *AccountRepository
	Events   *EventRepository
	Meals    *MealRepository
	Water    *WaterRepository
	Profiles *ProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(database),
		Events:   NewEventRepository(database),
		Meals:    NewMealRepository(database),
		Water:    NewWaterRepository(database),
		Profiles: NewProfileRepository(database),
	}
}
