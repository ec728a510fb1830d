package announcement

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func TestListWithoutActiveFlagIsEmpty(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "t", Content: "c", StartDate: time.Now().AddDate(0, 0, -1),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/announcements", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var announcements []models.Announcement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&announcements))
	assert.Empty(t, announcements)
}

func TestListActiveAnnouncements(t *testing.T) {
	app, st := newTestApp(t)

	live := st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "live", Content: "c", StartDate: time.Now().AddDate(0, 0, -1),
	})
	st.CreateAnnouncement(models.InsertAnnouncement{
		Title: "future", Content: "c", StartDate: time.Now().AddDate(0, 0, 1),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/announcements?active=true", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var announcements []models.Announcement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&announcements))
	require.Len(t, announcements, 1)
	assert.Equal(t, live.ID, announcements[0].ID)
}

func TestAnnouncementLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"title":"이벤트","content":"본문","startDate":"2025-05-01T00:00:00Z"}`
	req := httptest.NewRequest("POST", "/api/announcements", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Announcement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.IsActive) // default

	// deactivate via partial update
	req = httptest.NewRequest("PUT", "/api/announcements/1", strings.NewReader(`{"isActive":false}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Announcement
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.Title, updated.Title)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/announcements/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
