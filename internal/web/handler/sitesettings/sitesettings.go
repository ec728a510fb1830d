package sitesettings

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the site settings resource. Settings are a
	// singleton, so the routes carry no id.
	Path = "/api/settings"
)

// Service is the site settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the site settings handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st *store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.st = st

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Put(handler.RootPath, s.Put)
	})

	return nil
}

// Get returns the site settings record.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, ok := s.st.GetSiteSettings()
	if !ok {
		return handler.NotFound(c, "Site settings")
	}

	return c.JSON(settings)
}

// Put applies a partial update to the site settings record.
func (s *Service) Put(c *fiber.Ctx) error {
	in := new(models.SiteSettingsUpdate)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid site settings data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid site settings data", errs)
	}

	settings, ok := s.st.UpdateSiteSettings(0, *in)
	if !ok {
		return handler.NotFound(c, "Site settings")
	}

	return c.JSON(settings)
}
