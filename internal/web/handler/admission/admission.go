package admission

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the admission request resource.
	Path = "/api/admissions"
)

// Service is the admission handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the admission handler.
var Handler = Service{}

// Init initializes the admission handler.
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

// List returns the admission requests newest first, or only one status with
// ?status=.
func (s *Service) List(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		return c.JSON(s.st.GetAdmissionRequestsByStatus(status))
	}

	return c.JSON(s.st.GetAllAdmissionRequests())
}

// Get returns a single admission request.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	req, ok := s.st.GetAdmissionRequest(id)
	if !ok {
		return handler.NotFound(c, "Admission request")
	}

	return c.JSON(req)
}

// Post submits a new admission request. The stored request always starts
// as pending.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertAdmissionRequest)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid admission request data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid admission request data", errs)
	}

	req := s.st.CreateAdmissionRequest(*in)
	log.Info().Int("id", req.ID).Str("type", req.RequestType).Msg("admission request received")

	return c.Status(fiber.StatusCreated).JSON(req)
}

// Put applies a partial update to an admission request, typically a status
// change by the back-office.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.AdmissionRequestUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid admission request data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid admission request data", errs)
	}

	req, ok := s.st.UpdateAdmissionRequest(id, *in)
	if !ok {
		return handler.NotFound(c, "Admission request")
	}

	return c.JSON(req)
}

// Delete removes an admission request.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteAdmissionRequest(id) {
		return handler.NotFound(c, "Admission request")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
