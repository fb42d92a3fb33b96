package services

import (
	"sort"
	"sync"
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/models"
	"github.com/google/uuid"
)

// JournalStore is the durable-persistence collaborator. The in-memory
// collections are the source of truth for the session: a store error is
// reported to the caller but never rolls a mutation back.
type JournalStore interface {
	SaveEvent(event *models.Event) error
	DeleteEvent(id string) error
	SaveMeal(meal *models.MealEntry) error
	DeleteMeal(id string) error
	SaveWaterLog(entry *models.WaterLog) error
	SaveProfile(profile *models.Profile) error
}

type JournalSnapshot struct {
	Events  []models.Event
	Meals   []models.MealEntry
	Water   []models.WaterLog
	Profile models.Profile
}

// Journal owns the logged collections. Events and meals are kept
// insertion-ordered, newest first; water rows are keyed by local date.
// Writes are serialized by a mutex because HTTP handlers run concurrently.
type Journal struct {
	mu       sync.Mutex
	events   []models.Event
	meals    []models.MealEntry
	water    map[string]models.WaterLog
	profile  models.Profile
	store    JournalStore
	location *time.Location
}

func NewJournal(snapshot JournalSnapshot, store JournalStore, location *time.Location) *Journal {
	if location == nil {
		location = time.UTC
	}

	water := make(map[string]models.WaterLog, len(snapshot.Water))
	for _, entry := range snapshot.Water {
		water[entry.Date] = entry
	}

	events := make([]models.Event, len(snapshot.Events))
	copy(events, snapshot.Events)
	meals := make([]models.MealEntry, len(snapshot.Meals))
	copy(meals, snapshot.Meals)

	return &Journal{
		events:   events,
		meals:    meals,
		water:    water,
		profile:  snapshot.Profile,
		store:    store,
		location: location,
	}
}

func (journal *Journal) Location() *time.Location {
	return journal.location
}

// EventPatch carries the updatable event fields. The timestamp is immutable
// after creation.
type EventPatch struct {
	Bristol  *int
	Symptoms *models.SymptomSet
	Notes    *string
	PhotoRef *string
}

type MealPatch struct {
	MealType *string
	Name     *string
	Foods    *[]string
	PhotoRef *string
}

type ProfilePatch struct {
	Name          *string
	Mood          *string
	BaselineScore *int
}

func (journal *Journal) AppendEvent(event models.Event) (models.Event, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	journal.events = append([]models.Event{event}, journal.events...)
	journal.profile.TotalLogs++

	err := journal.store.SaveEvent(&event)
	if saveErr := journal.store.SaveProfile(&journal.profile); err == nil {
		err = saveErr
	}
	return event, err
}

func (journal *Journal) UpdateEvent(id string, patch EventPatch) (models.Event, bool, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	index := journal.eventIndex(id)
	if index < 0 {
		return models.Event{}, false, nil
	}

	event := journal.events[index]
	if patch.Bristol != nil {
		event.Bristol = *patch.Bristol
	}
	if patch.Symptoms != nil {
		event.Symptoms = *patch.Symptoms
	}
	if patch.Notes != nil {
		event.Notes = *patch.Notes
	}
	if patch.PhotoRef != nil {
		event.PhotoRef = *patch.PhotoRef
	}
	journal.events[index] = event

	return event, true, journal.store.SaveEvent(&event)
}

func (journal *Journal) RemoveEvent(id string) error {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	index := journal.eventIndex(id)
	if index < 0 {
		return nil
	}
	journal.events = append(journal.events[:index], journal.events[index+1:]...)
	return journal.store.DeleteEvent(id)
}

// QuickLogPoop is the one-tap write path: an all-clear event with a default
// stool type, plus an incremental streak update. The streak only moves on
// the first log of a day; a later log the same day leaves it alone.
func (journal *Journal) QuickLogPoop(bristol int, now time.Time) (models.Event, error) {
	if bristol < models.BristolMin || bristol > models.BristolMax {
		bristol = 4
	}

	journal.mu.Lock()
	defer journal.mu.Unlock()

	today := DateAtLocation(now, journal.location)
	yesterday := today.AddDate(0, 0, -1)
	hadLogToday := journal.hasEventOn(today)
	hadLogYesterday := journal.hasEventOn(yesterday)

	event := models.Event{
		ID:        uuid.NewString(),
		Timestamp: now,
		Bristol:   bristol,
	}
	journal.events = append([]models.Event{event}, journal.events...)
	journal.profile.TotalLogs++
	if !hadLogToday {
		if hadLogYesterday {
			journal.profile.Streak++
		} else {
			journal.profile.Streak = 1
		}
	}

	err := journal.store.SaveEvent(&event)
	if saveErr := journal.store.SaveProfile(&journal.profile); err == nil {
		err = saveErr
	}
	return event, err
}

func (journal *Journal) AddMeal(meal models.MealEntry) (models.MealEntry, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	journal.meals = append([]models.MealEntry{meal}, journal.meals...)
	return meal, journal.store.SaveMeal(&meal)
}

func (journal *Journal) UpdateMeal(id string, patch MealPatch) (models.MealEntry, bool, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	index := journal.mealIndex(id)
	if index < 0 {
		return models.MealEntry{}, false, nil
	}

	meal := journal.meals[index]
	if patch.MealType != nil {
		meal.MealType = *patch.MealType
	}
	if patch.Name != nil {
		meal.Name = *patch.Name
	}
	if patch.Foods != nil {
		meal.Foods = *patch.Foods
	}
	if patch.PhotoRef != nil {
		meal.PhotoRef = *patch.PhotoRef
	}
	journal.meals[index] = meal

	return meal, true, journal.store.SaveMeal(&meal)
}

func (journal *Journal) RemoveMeal(id string) error {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	index := journal.mealIndex(id)
	if index < 0 {
		return nil
	}
	journal.meals = append(journal.meals[:index], journal.meals[index+1:]...)
	return journal.store.DeleteMeal(id)
}

// AddWater increments today's intake, creating the day row lazily. There is
// no decrement path.
func (journal *Journal) AddWater(now time.Time) (models.WaterLog, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	key := DayKey(now, journal.location)
	entry, exists := journal.water[key]
	if !exists {
		entry = models.WaterLog{Date: key}
	}
	entry.Glasses++
	journal.water[key] = entry

	return entry, journal.store.SaveWaterLog(&entry)
}

func (journal *Journal) TodayWater(now time.Time) int {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	return journal.water[DayKey(now, journal.location)].Glasses
}

func (journal *Journal) UpdateProfile(patch ProfilePatch) (models.Profile, error) {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	if patch.Name != nil {
		journal.profile.Name = *patch.Name
	}
	if patch.Mood != nil {
		journal.profile.Mood = *patch.Mood
	}
	if patch.BaselineScore != nil {
		journal.profile.BaselineScore = *patch.BaselineScore
	}
	return journal.profile, journal.store.SaveProfile(&journal.profile)
}

func (journal *Journal) Profile() models.Profile {
	journal.mu.Lock()
	defer journal.mu.Unlock()
	return journal.profile
}

// RecentEvents returns a copy of the newest n events.
func (journal *Journal) RecentEvents(n int) []models.Event {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	if n < 0 {
		n = 0
	}
	if n > len(journal.events) {
		n = len(journal.events)
	}
	recent := make([]models.Event, n)
	copy(recent, journal.events[:n])
	return recent
}

func (journal *Journal) EventsSnapshot() []models.Event {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	events := make([]models.Event, len(journal.events))
	copy(events, journal.events)
	return events
}

func (journal *Journal) MealsSnapshot() []models.MealEntry {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	meals := make([]models.MealEntry, len(journal.meals))
	copy(meals, journal.meals)
	return meals
}

func (journal *Journal) WaterSnapshot() []models.WaterLog {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	entries := make([]models.WaterLog, 0, len(journal.water))
	for _, entry := range journal.water {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}

// TodaysMeals filters meals whose timestamp truncates to the current local
// day.
func (journal *Journal) TodaysMeals(now time.Time) []models.MealEntry {
	journal.mu.Lock()
	defer journal.mu.Unlock()

	today := DateAtLocation(now, journal.location)
	meals := make([]models.MealEntry, 0)
	for _, meal := range journal.meals {
		if DateAtLocation(meal.Timestamp, journal.location).Equal(today) {
			meals = append(meals, meal)
		}
	}
	return meals
}

func (journal *Journal) eventIndex(id string) int {
	for index := range journal.events {
		if journal.events[index].ID == id {
			return index
		}
	}
	return -1
}

func (journal *Journal) mealIndex(id string) int {
	for index := range journal.meals {
		if journal.meals[index].ID == id {
			return index
		}
	}
	return -1
}

func (journal *Journal) hasEventOn(day time.Time) bool {
	for _, event := range journal.events {
		if DateAtLocation(event.Timestamp, journal.location).Equal(day) {
			return true
		}
	}
	return false
}
