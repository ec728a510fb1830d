package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	fiberlogger "github.com/kimjuyoung1127/PuppyVill/internal/logger/adapter/fiber"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/admission"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/announcement"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/cafe"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/faq"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/gallery"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/grooming"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/monthlyprogram"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/price"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/program"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/review"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/schedule"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/sitesettings"
	"github.com/kimjuyoung1127/PuppyVill/internal/web/handler/user"
)

const checkAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	st    *store.Store
	alive atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail checkalive first, so a LB
	// can remove this pod from its active targets before the listener stops.
	log.Info().Msgf(
		"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and store.
func New(cfg *config.Config, st *store.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if st == nil {
		panic("store cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "PuppyVill",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: checkAlivePath,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
		st:  st,
	}
	service.alive.Store(true)

	app.Get(checkAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	for _, h := range []handlerInit{
		user.Handler.Init,
		announcement.Handler.Init,
		program.Handler.Init,
		schedule.Handler.Init,
		monthlyprogram.Handler.Init,
		gallery.Handler.Init,
		price.Handler.Init,
		grooming.Handler.Init,
		cafe.Handler.Init,
		admission.Handler.Init,
		faq.Handler.Init,
		review.Handler.Init,
		sitesettings.Handler.Init,
	} {
		if err := h(app, cfg, st); err != nil {
			log.Fatal().Err(err).Msg("handler init failed")
		}
	}

	return service
}

type handlerInit func(*fiber.App, *config.Config, *store.Store) error

// errorHandler hides internal errors behind a generic 500 envelope while
// keeping explicit fiber status codes (404 on unknown routes etc).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.Status(code).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(code).JSON(fiber.Map{"message": fiberErr.Message})
}
