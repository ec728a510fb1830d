package admission

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

func TestPostAdmissionRequest(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"ownerName":"김지연","dogName":"콩이","email":"a@b.com"}`
	req := httptest.NewRequest("POST", "/api/admissions", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.AdmissionRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.AdmissionStatusPending, created.Status)
	assert.Equal(t, "tour", created.RequestType)
}

func TestPostAdmissionRequestInvalidEmail(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"ownerName":"김지연","dogName":"콩이","email":"not-an-email"}`
	req := httptest.NewRequest("POST", "/api/admissions", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPutAdmissionStatusChange(t *testing.T) {
	app, st := newTestApp(t)

	created := st.CreateAdmissionRequest(models.InsertAdmissionRequest{
		OwnerName: "a", DogName: "d", Email: "a@b.com",
	})

	req := httptest.NewRequest("PUT", "/api/admissions/1", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.AdmissionRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, models.AdmissionStatusConfirmed, updated.Status)
	assert.Equal(t, created.OwnerName, updated.OwnerName)
}

func TestStatusFilter(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateAdmissionRequest(models.InsertAdmissionRequest{OwnerName: "a", DogName: "d", Email: "a@b.com"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admissions?status=confirmed", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var requests []models.AdmissionRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&requests))
	assert.Empty(t, requests)
}
