package db

import "github.com/Ashwinn11/gutbuddy/internal/models"

// JournalStore adapts the repositories to the engine's persistence
// collaborator. Every method is a plain pass-through write; the engine
// treats failures as recoverable and keeps its in-memory state.
type JournalStore struct {
	repositories *Repositories
}

func NewJournalStore(repositories *Repositories) JournalStore {
	return JournalStore{repositories: repositories}
}

func (store JournalStore) SaveEvent(event *models.Event) error {
	return store.repositories.Events.Save(event)
}

func (store JournalStore) DeleteEvent(id string) error {
	return store.repositories.Events.DeleteByID(id)
}

func (store JournalStore) SaveMeal(meal *models.MealEntry) error {
	return store.repositories.Meals.Save(meal)
}

func (store JournalStore) DeleteMeal(id string) error {
	return store.repositories.Meals.DeleteByID(id)
}

func (store JournalStore) SaveWaterLog(entry *models.WaterLog) error {
	return store.repositories.Water.Save(entry)
}

func (store JournalStore) SaveProfile(profile *models.Profile) error {
	return store.repositories.Profiles.Save(profile)
}
