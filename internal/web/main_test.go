package web

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:          "http://localhost",
			Port:         8080,
			ShutDownTime: 1,
		},
	}

	st := store.New()

	return New(cfg, st), st
}

func TestNewPanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { New(nil, store.New()) })
	assert.Panics(t, func() { New(&config.Config{}, nil) })
}

func TestCheckAlive(t *testing.T) {
	service, _ := newTestService(t)

	resp, err := service.App.Test(httptest.NewRequest("GET", "/checkalive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// once the shutdown sequence flips the flag, the LB health check fails
	service.alive.Store(false)

	resp, err = service.App.Test(httptest.NewRequest("GET", "/checkalive", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	service, _ := newTestService(t)

	resp, err := service.App.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	service, _ := newTestService(t)

	resp, err := service.App.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAllResourceRoutesAreRegistered(t *testing.T) {
	service, st := newTestService(t)
	store.Seed(st)

	listPaths := []string{
		"/api/programs",
		"/api/schedule",
		"/api/monthly-programs",
		"/api/gallery",
		"/api/prices",
		"/api/grooming",
		"/api/cafe",
		"/api/admissions",
		"/api/faq",
		"/api/reviews",
		"/api/announcements",
		"/api/settings",
	}

	for _, path := range listPaths {
		resp, err := service.App.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestSeededProgramsServed(t *testing.T) {
	service, st := newTestService(t)
	store.Seed(st)

	resp, err := service.App.Test(httptest.NewRequest("GET", "/api/programs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var programs []models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&programs))
	require.Len(t, programs, 3)
	assert.Equal(t, "기다려 훈련", programs[0].Title)
}
