package review

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler"
)

const (
	// Path is the path of the review resource.
	Path = "/api/reviews"
)

// Service is the review handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the review handler.
var Handler = Service{}

// Init initializes the review handler.
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

// List returns all reviews newest first. With ?verified=true only the
// verified ones are returned, which is what the public site shows.
func (s *Service) List(c *fiber.Ctx) error {
	if c.Query("verified") == "true" {
		return c.JSON(s.st.GetVerifiedReviews())
	}

	return c.JSON(s.st.GetAllReviews())
}

// Get returns a single review.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	r, ok := s.st.GetReview(id)
	if !ok {
		return handler.NotFound(c, "Review")
	}

	return c.JSON(r)
}

// Post submits a review. The stored review always starts unverified.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertReview)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid review data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid review data", errs)
	}

	return c.Status(fiber.StatusCreated).JSON(s.st.CreateReview(*in))
}

// Put applies a partial update to a review, including the verification flag.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	in := new(models.ReviewUpdate)
	if err = c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid review data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid review data", errs)
	}

	r, ok := s.st.UpdateReview(id, *in)
	if !ok {
		return handler.NotFound(c, "Review")
	}

	return c.JSON(r)
}

// Delete removes a review.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	if !s.st.DeleteReview(id) {
		return handler.NotFound(c, "Review")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
