package user

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

func TestLoginSuccess(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateUser(models.InsertUser{Username: "admin", Password: "admin123", Name: "관리자"})

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// raw decode to prove the password never leaves the server
	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "admin", raw["username"])
	assert.NotContains(t, raw, "password")
}

func TestLoginRejected(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateUser(models.InsertUser{Username: "admin", Password: "admin123", Name: "관리자"})

	testCases := []struct {
		name string
		body string
	}{
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`},
		{name: "unknown user", body: `{"username":"ghost","password":"admin123"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/login", strings.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
			assert.Equal(t, "Invalid credentials", payload["message"])
		})
	}
}

func TestCreateUser(t *testing.T) {
	app, st := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/users",
		strings.NewReader(`{"username":"staff","password":"secret","name":"Staff"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")

	u, ok := st.GetUserByUsername("staff")
	require.True(t, ok)
	assert.True(t, u.VerifyPassword("secret"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	app, st := newTestApp(t)

	st.CreateUser(models.InsertUser{Username: "admin", Password: "p", Name: "n"})

	req := httptest.NewRequest("POST", "/api/users",
		strings.NewReader(`{"username":"admin","password":"p2","name":"other"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Username already exists", payload["message"])
}

func TestGetUser(t *testing.T) {
	app, st := newTestApp(t)

	created := st.CreateUser(models.InsertUser{Username: "admin", Password: "p", Name: "관리자"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/users/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var u models.PublicUser
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
	assert.Equal(t, created.ID, u.ID)
	assert.Equal(t, "관리자", u.Name)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/users/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
