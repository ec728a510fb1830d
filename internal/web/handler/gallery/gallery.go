package gallery

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the gallery resource.
	Path = "/api/gallery"
)

// Service is the gallery handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the gallery handler.
var Handler = Service{}

// Init initializes the gallery handler.
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

// List returns all gallery images newest first, or only one category with
// ?category=.
func (s *Service) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(s.st.GetGalleryImagesByCategory(category))
	}

	return c.JSON(s.st.GetAllGalleryImages())
}

// Get returns a single gallery image.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	img, ok := s.st.GetGalleryImage(id)
	if !ok {
		return handler.NotFound(c, "Gallery image")
	}

	return c.JSON(img)
}

// Post creates a gallery image.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertGalleryImage)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid gallery image data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid gallery image data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateGalleryImage(*in))
}

// Put applies a partial update to a gallery image.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.GalleryImageUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid gallery image data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid gallery image data", errs)
	}

	img, ok := s.st.UpdateGalleryImage(id, *in)
	if !ok {
		return handler.NotFound(c, "Gallery image")
	}

	return c.JSON(img)
}

// Delete removes a gallery image.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteGalleryImage(id) {
		return handler.NotFound(c, "Gallery image")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
