package program

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

func TestInitNilDependencies(t *testing.T) {
	assert.Error(t, Handler.Init(nil, nil, nil))
}

func TestListPrograms(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateProgram(models.InsertProgram{Title: "a", Category: "education", Description: "d", Order: 2})
	st.CreateProgram(models.InsertProgram{Title: "b", Category: "fitness", Description: "d", Order: 1})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/programs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var programs []models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&programs))
	require.Len(t, programs, 2)
	assert.Equal(t, "b", programs[0].Title) // display order wins over id
}

func TestListProgramsByCategory(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateProgram(models.InsertProgram{Title: "a", Category: "education", Description: "d"})
	st.CreateProgram(models.InsertProgram{Title: "b", Category: "fitness", Description: "d"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/programs?category=fitness", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var programs []models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&programs))
	require.Len(t, programs, 1)
	assert.Equal(t, "b", programs[0].Title)
}

func TestGetProgramNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/programs/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPostProgram(t *testing.T) {
	app, st := newTestApp(t)

	body := `{"title":"기다려 훈련","category":"education","description":"desc","order":1}`
	req := httptest.NewRequest("POST", "/api/programs", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "기다려 훈련", created.Title)

	_, ok := st.GetProgram(created.ID)
	assert.True(t, ok)
}

func TestPostProgramMissingFields(t *testing.T) {
	app, st := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/programs", strings.NewReader(`{"title":"only title"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			FailedField string `json:"failedField"`
			Tag         string `json:"tag"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Invalid program data", payload.Message)
	assert.NotEmpty(t, payload.Errors)

	// nothing was stored
	assert.Empty(t, st.GetAllPrograms())
}

func TestPutProgramPartialUpdate(t *testing.T) {
	app, st := newTestApp(t)

	created := st.CreateProgram(models.InsertProgram{Title: "a", Category: "education", Description: "d", Order: 1})

	req := httptest.NewRequest("PUT", "/api/programs/1", strings.NewReader(`{"title":"renamed"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Program
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, created.Category, updated.Category)
}

func TestPutProgramNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("PUT", "/api/programs/42", strings.NewReader(`{"title":"x"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteProgram(t *testing.T) {
	app, st := newTestApp(t)

	created := st.CreateProgram(models.InsertProgram{Title: "a", Category: "education", Description: "d"})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/programs/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	_, ok := st.GetProgram(created.ID)
	assert.False(t, ok)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/programs/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
