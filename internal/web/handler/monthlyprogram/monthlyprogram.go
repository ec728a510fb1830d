package monthlyprogram

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the monthly program resource.
	Path = "/api/monthly-programs"
)

// Service is the monthly program handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the monthly program handler.
var Handler = Service{}

// Init initializes the monthly program handler.
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

// List returns the events of one calendar month. The ?year= and ?month=
// query parameters (month 1-12) default to the current month.
func (s *Service) List(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	return c.JSON(s.st.GetMonthlyProgramsByMonth(year, time.Month(month)))
}

// Get returns a single monthly program event.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	p, ok := s.st.GetMonthlyProgram(id)
	if !ok {
		return handler.NotFound(c, "Monthly program")
	}

	return c.JSON(p)
}

// Post creates a monthly program event.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertMonthlyProgram)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid monthly program data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid monthly program data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateMonthlyProgram(*in))
}

// Put applies a partial update to a monthly program event.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.MonthlyProgramUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid monthly program data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid monthly program data", errs)
	}

	p, ok := s.st.UpdateMonthlyProgram(id, *in)
	if !ok {
		return handler.NotFound(c, "Monthly program")
	}

	return c.JSON(p)
}

// Delete removes a monthly program event.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteMonthlyProgram(id) {
		return handler.NotFound(c, "Monthly program")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
