package program

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the program resource.
	Path = "/api/programs"
)

// Service is the program handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the program handler.
var Handler = Service{}

// Init initializes the program handler.
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

// List returns all programs, or only one category with ?category=.
func (s *Service) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(s.st.GetProgramsByCategory(category))
	}

	return c.JSON(s.st.GetAllPrograms())
}

// Get returns a single program.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	p, ok := s.st.GetProgram(id)
	if !ok {
		return handler.NotFound(c, "Program")
	}

	return c.JSON(p)
}

// Post creates a program.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertProgram)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid program data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid program data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateProgram(*in))
}

// Put applies a partial update to a program.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.ProgramUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid program data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid program data", errs)
	}

	p, ok := s.st.UpdateProgram(id, *in)
	if !ok {
		return handler.NotFound(c, "Program")
	}

	return c.JSON(p)
}

// Delete removes a program.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteProgram(id) {
		return handler.NotFound(c, "Program")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
