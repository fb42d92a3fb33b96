package api

import (
	"time"

	"github.com/Ashwinn11/gutbuddy/internal/db"
	"github.com/Ashwinn11/gutbuddy/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	repositories *db.Repositories
	journal      *services.Journal
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

// NewHandler loads the persisted collections into the in-memory journal and
// wires the repositories behind it. The journal is the canonical state for
// the rest of the process lifetime; the database only trails it.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)

	events, err := repositories.Events.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	meals, err := repositories.Meals.ListNewestFirst()
	if err != nil {
		return nil, err
	}
	water, err := repositories.Water.ListAll()
	if err != nil {
		return nil, err
	}
	profile, err := repositories.Profiles.Load()
	if err != nil {
		return nil, err
	}

	journal := services.NewJournal(services.JournalSnapshot{
		Events:  events,
		Meals:   meals,
		Water:   water,
		Profile: profile,
	}, db.NewJournalStore(repositories), location)

	return &Handler{
		repositories: repositories,
		journal:      journal,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
