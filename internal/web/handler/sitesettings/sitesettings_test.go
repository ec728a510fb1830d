package sitesettings

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimjuyoung1127/PuppyVill/internal/config"
	"github.com/kimjuyoung1127/PuppyVill/internal/models"
	"github.com/kimjuyoung1127/PuppyVill/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	app := fiber.New()
	st := store.New()

	require.NoError(t, Handler.Init(app, &config.Config{}, st))

	return app, st
}

func TestGetSettingsWithoutRecord(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetSettings(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateSiteSettings(models.InsertSiteSettings{SiteName: "퍼피빌", Phone: "02-123-4567"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var settings models.SiteSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	assert.Equal(t, "퍼피빌", settings.SiteName)
}

func TestPutSettingsPartialUpdate(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateSiteSettings(models.InsertSiteSettings{SiteName: "퍼피빌", Phone: "02-123-4567"})

	req := httptest.NewRequest("PUT", "/api/settings", strings.NewReader(`{"phone":"02-999-9999"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var settings models.SiteSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	assert.Equal(t, "02-999-9999", settings.Phone)
	assert.Equal(t, "퍼피빌", settings.SiteName)
}

func TestPutSettingsWithoutRecord(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/settings", strings.NewReader(`{"phone":"02-999-9999"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
