package grooming

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the grooming service resource.
	Path = "/api/grooming"
)

// Service is the grooming handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the grooming handler.
var Handler = Service{}

// Init initializes the grooming handler.
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

// List returns all grooming services in display order.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(s.st.GetAllGroomingServices())
}

// Get returns a single grooming service.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	svc, ok := s.st.GetGroomingService(id)
	if !ok {
		return handler.NotFound(c, "Grooming service")
	}

	return c.JSON(svc)
}

// Post creates a grooming service.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertGroomingService)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid grooming service data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid grooming service data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateGroomingService(*in))
}

// Put applies a partial update to a grooming service.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.GroomingServiceUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid grooming service data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid grooming service data", errs)
	}

	svc, ok := s.st.UpdateGroomingService(id, *in)
	if !ok {
		return handler.NotFound(c, "Grooming service")
	}

	return c.JSON(svc)
}

// Delete removes a grooming service.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteGroomingService(id) {
		return handler.NotFound(c, "Grooming service")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
