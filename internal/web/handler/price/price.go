package price

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the price table resource.
	Path = "/api/prices"
)

// Service is the price handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the price handler.
var Handler = Service{}

// Init initializes the price handler.
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

// List returns the price table, or only one category with ?category=.
func (s *Service) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(s.st.GetPriceItemsByCategory(category))
	}

	return c.JSON(s.st.GetAllPriceItems())
}

// Get returns a single price item.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	item, ok := s.st.GetPriceItem(id)
	if !ok {
		return handler.NotFound(c, "Price item")
	}

	return c.JSON(item)
}

// Post creates a price item.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertPriceItem)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid price item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid price item data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreatePriceItem(*in))
}

// Put applies a partial update to a price item.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.PriceItemUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid price item data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid price item data", errs)
	}

	item, ok := s.st.UpdatePriceItem(id, *in)
	if !ok {
		return handler.NotFound(c, "Price item")
	}

	return c.JSON(item)
}

// Delete removes a price item.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeletePriceItem(id) {
		return handler.NotFound(c, "Price item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
