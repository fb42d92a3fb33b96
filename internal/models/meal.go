package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealDrink     = "drink"
)

type MealEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	MealType  string    `gorm:"not null;default:snack" json:"mealType"`
	Name      string    `gorm:"not null" json:"name"`
	Foods     []string  `gorm:"serializer:json" json:"foods,omitempty"`
	PhotoRef  string    `json:"photoRef,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func IsValidMealType(value string) bool {
	switch value {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealDrink:
		return true
	}
	return false
}
