package schedule

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the daily schedule resource.
	Path = "/api/schedule"
)

// Service is the schedule handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the schedule handler.
var Handler = Service{}

// Init initializes the schedule handler.
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

// List returns the whole daily schedule in display order.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(s.st.GetAllScheduleItems())
}

// Get returns a single schedule item.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	item, ok := s.st.GetScheduleItem(id)
	if !ok {
		return handler.NotFound(c, "Schedule item")
	}

	return c.JSON(item)
}

// Post creates a schedule item.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertScheduleItem)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid schedule item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid schedule item data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateScheduleItem(*in))
}

// Put applies a partial update to a schedule item.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.ScheduleItemUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid schedule item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid schedule item data", errs)
	}

	item, ok := s.st.UpdateScheduleItem(id, *in)
	if !ok {
		return handler.NotFound(c, "Schedule item")
	}

	return c.JSON(item)
}

// Delete removes a schedule item.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteScheduleItem(id) {
		return handler.NotFound(c, "Schedule item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
