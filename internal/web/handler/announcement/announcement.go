package announcement

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the announcement resource.
	Path = "/api/announcements"
)

// Service is the announcement handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the announcement handler.
var Handler = Service{}

// Init initializes the announcement handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st *store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.st = st

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get(handler.IDPath, s.Get)
		router.Post(handler.RootPath, s.Post)
		router.Put(handler.IDPath, s.Put)
		router.Delete(handler.IDPath, s.Delete)
	})

	return nil
}

// List returns the live announcements when ?active=true is given. Without
// the flag the endpoint answers an empty list: the full set is only
// reachable item by item.
func (s *Service) List(c *fiber.Ctx) error {
	if c.Query("active") != "true" {
		return c.JSON([]models.Announcement{})
	}

	return c.JSON(s.st.GetActiveAnnouncements())
}

// Get returns a single announcement.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	a, ok := s.st.GetAnnouncement(id)
	if !ok {
		return handler.NotFound(c, "Announcement")
	}

	return c.JSON(a)
}

// Post creates an announcement.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertAnnouncement)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid announcement data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid announcement data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateAnnouncement(*in))
}

// Put applies a partial update to an announcement.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.AnnouncementUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid announcement data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid announcement data", errs)
	}

	a, ok := s.st.UpdateAnnouncement(id, *in)
	if !ok {
		return handler.NotFound(c, "Announcement")
	}

	return c.JSON(a)
}

// Delete removes an announcement.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteAnnouncement(id) {
		return handler.NotFound(c, "Announcement")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
