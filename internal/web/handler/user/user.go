package user

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
	// LoginPath is the path of the login endpoint.
	LoginPath = "/api/login"

	// Path is the path of the user resource.
	Path = "/api/users"
)

// Service is the user handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	st  *store.Store
}

// Handler is the user handler.
var Handler = Service{}

// Init initializes the user handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, st *store.Store) error {
	if app == nil || cfg == nil || st == nil {
		return errors.New(handler.ErrNilACSFatalLogMsg)
	}

	s.cfg = cfg
	s.st = st

	app.Post(LoginPath, s.Login)

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RootPath, s.Post)
		router.Get(handler.IDPath, s.Get)
	})

	return nil
}

// Login checks the submitted credentials and returns the matching account
// without its password hash. Unknown usernames and wrong passwords get the
// same answer.
func (s *Service) Login(c *fiber.Ctx) error {
	creds := new(models.Credentials)

	if err := c.BodyParser(creds); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	if errs := handler.Validate(creds); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid credentials", errs)
	}

	u, ok := s.st.GetUserByUsername(creds.Username)
	if !ok || !u.VerifyPassword(creds.Password) {
		log.Debug().Str("username", creds.Username).Msg("login rejected")
		return handler.Message(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(u.Sanitized())
}

// Post creates a back-office account. Usernames must be unique.
func (s *Service) Post(c *fiber.Ctx) error {
	in := new(models.InsertUser)

	if err := c.BodyParser(in); err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid user data")
	}

	if errs := handler.Validate(in); len(errs) > 0 {
		return handler.InvalidData(c, "Invalid user data", errs)
	}

	if _, ok := s.st.GetUserByUsername(in.Username); ok {
		return handler.Message(c, fiber.StatusBadRequest, "Username already exists")
	}

	u := s.st.CreateUser(*in)
	log.Info().Str("username", u.Username).Msg("user created")

	return c.Status(fiber.StatusCreated).JSON(u.Sanitized())
}

// Get returns a single account without its password hash.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ParseID(c)
	if err != nil {
		return handler.Message(c, fiber.StatusBadRequest, "Invalid id")
	}

	u, ok := s.st.GetUser(id)
	if !ok {
		return handler.NotFound(c, "User")
	}

	return c.JSON(u.Sanitized())
}
