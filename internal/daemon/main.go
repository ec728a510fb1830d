package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
	"github.com/kimjuyoung1127/PuppyVill/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go d.webService.WaitShutdown()

	log.Info().Msgf("starting web service on %s", addr)

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	st := store.New()
	store.Seed(st)

	return &Daemon{
		webService: web.New(cfg, st),
		cfg:        cfg,
	}
}
