package cafe

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the cafe menu resource.
	Path = "/api/cafe"
)

// Service is the cafe handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the cafe handler.
var Handler = Service{}

// Init initializes the cafe handler.
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

// List returns the cafe menu, or only one category with ?category=.
func (s *Service) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(s.st.GetCafeItemsByCategory(category))
	}

	return c.JSON(s.st.GetAllCafeItems())
}

// Get returns a single cafe item.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	item, ok := s.st.GetCafeItem(id)
	if !ok {
		return handler.NotFound(c, "Cafe item")
	}

	return c.JSON(item)
}

// Post creates a cafe item.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertCafeItem)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid cafe item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid cafe item data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateCafeItem(*in))
}

// Put applies a partial update to a cafe item.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.CafeItemUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid cafe item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid cafe item data", errs)
	}

	item, ok := s.st.UpdateCafeItem(id, *in)
	if !ok {
		return handler.NotFound(c, "Cafe item")
	}

	return c.JSON(item)
}

// Delete removes a cafe item.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteCafeItem(id) {
		return handler.NotFound(c, "Cafe item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
