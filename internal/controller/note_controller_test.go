package controller_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "test.log"),
			CorsAllowedOrigins: "http://localhost:5173",
		},
		Database: config.DatabaseConfig{Driver: "memory"},
		Auth:     config.AuthConfig{Secret: "test_secret", TokenTTL: time.Hour},
		Notes: config.NotesConfig{
			Auth: config.AuthPolicy{Create: true},
		},
	}

	container := bootstrap.NewContainer(nil, cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodPost, "/api/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.NotEmpty(t, res.Token)
	return "Bearer " + res.Token
}

func rootUserId(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []struct {
		Id       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(raw, &users))
	for _, u := range users {
		if u.Username == "root" {
			return u.Id
		}
	}
	t.Fatal("seed user not found")
	return ""
}

func listNotes(t *testing.T, app *fiber.App) []map[string]interface{} {
	t.Helper()

	resp, raw := doJSON(t, app, http.MethodGet, "/api/notes", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notes []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &notes))
	return notes
}

func TestNoteLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "root", "sekret")
	ownerId := rootUserId(t, app)

	// Create
	resp, raw := doJSON(t, app, http.MethodPost, "/api/notes",
		`{"content":"HTML is easy","important":true}`, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created struct {
		Id        string `json:"id"`
		Content   string `json:"content"`
		Important bool   `json:"important"`
		User      string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, ownerId, created.User)
	assert.True(t, created.Important)
	assert.Equal(t, "HTML is easy", created.Content)

	// Read back
	resp, raw = doJSON(t, app, http.MethodGet, "/api/notes/"+created.Id, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched struct {
		Content   string `json:"content"`
		Important bool   `json:"important"`
	}
	require.NoError(t, json.Unmarshal(raw, &fetched))
	assert.Equal(t, created.Content, fetched.Content)
	assert.Equal(t, created.Important, fetched.Important)

	// Delete
	resp, raw = doJSON(t, app, http.MethodDelete, "/api/notes/"+created.Id, "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, raw)

	// Gone
	resp, raw = doJSON(t, app, http.MethodGet, "/api/notes/"+created.Id, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, raw)
}

func TestCreateNoteUnauthorized(t *testing.T) {
	app := newTestApp(t)
	before := len(listNotes(t, app))

	t.Run("no token", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"content":"x"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"error":"token invalid"}`, string(raw))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"content":"x"}`, "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"error":"token invalid"}`, string(raw))
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"content":"x"}`, "Bearer junk")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"error":"token invalid"}`, string(raw))
	})

	t.Run("missing content still rejected on auth first", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"important":true}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"error":"token invalid"}`, string(raw))
	})

	assert.Len(t, listNotes(t, app), before)
}

func TestCreateNoteMissingContent(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "root", "sekret")
	before := len(listNotes(t, app))

	resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"important":true}`, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"content missing"}`, string(raw))

	assert.Len(t, listNotes(t, app), before)
}

func TestListNotesExpandsOwner(t *testing.T) {
	app := newTestApp(t)

	notes := listNotes(t, app)
	require.Len(t, notes, 3) // seeded collection

	for _, n := range notes {
		owner, ok := n["user"].(map[string]interface{})
		require.True(t, ok, "owner should be expanded to an object")
		assert.Equal(t, "root", owner["username"])
		assert.Equal(t, "Superuser", owner["name"])
		assert.NotContains(t, owner, "notes")
		assert.NotContains(t, owner, "id")
	}
}

func TestDeleteNoteIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "root", "sekret")

	_, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"content":"to delete"}`, token)
	var created struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/notes/"+created.Id, "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/notes/"+created.Id, "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUpdateNote(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "root", "sekret")

	_, raw := doJSON(t, app, http.MethodPost, "/api/notes",
		`{"content":"old","important":true}`, token)
	var created struct {
		Id string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	// Partial update: only content supplied, importance must survive.
	resp, raw := doJSON(t, app, http.MethodPut, "/api/notes/"+created.Id, `{"content":"new"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Content   string `json:"content"`
		Important bool   `json:"important"`
	}
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "new", updated.Content)
	assert.True(t, updated.Important)
}

func TestUpdateAbsentNoteReturnsNull(t *testing.T) {
	app := newTestApp(t)
	before := len(listNotes(t, app))

	resp, raw := doJSON(t, app, http.MethodPut,
		"/api/notes/00000000-0000-0000-0000-000000000001", `{"content":"x"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", strings.TrimSpace(string(raw)))

	assert.Len(t, listNotes(t, app), before)
}

func TestMalformedNoteId(t *testing.T) {
	app := newTestApp(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		resp, raw := doJSON(t, app, method, "/api/notes/not-a-uuid", "", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"malformed note id"}`, string(raw))
	}
}

func TestUnknownEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"unknown endpoint"}`, string(raw))
}

func TestUserRegistrationAndLogin(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/users",
		`{"username":"mluukkai","name":"Matti Luukkainen","password":"salainen"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created struct {
		Id       string   `json:"id"`
		Username string   `json:"username"`
		Notes    []string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "mluukkai", created.Username)
	assert.NotNil(t, created.Notes)
	assert.Len(t, created.Notes, 0)

	t.Run("duplicate username rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/users",
			`{"username":"mluukkai","name":"Someone Else","password":"salainen"}`, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"username must be unique"}`, string(raw))
	})

	t.Run("new user can create notes", func(t *testing.T) {
		token := login(t, app, "mluukkai", "salainen")

		resp, raw := doJSON(t, app, http.MethodPost, "/api/notes", `{"content":"hello"}`, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

		var note struct {
			User string `json:"user"`
		}
		require.NoError(t, json.Unmarshal(raw, &note))
		assert.Equal(t, created.Id, note.User)
	})

	t.Run("bad credentials rejected", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/login",
			`{"username":"mluukkai","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"error":"invalid username or password"}`, string(raw))
	})
}
