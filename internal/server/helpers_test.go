package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- humanizeParam (pure function, no HTTP) ---

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param    string
		expected string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"postId", "post ID"},
		{"commentId", "comment ID"},
		{"shareId", "share ID"},
		{"something", "something"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			assert.Equal(t, tt.expected, humanizeParam(tt.param))
		})
	}
}

// --- parseID ---

func TestParseID_ValidID(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(42), body["id"])
}

func TestParseID_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expectedMsg string
	}{
		{"non-numeric", "abc", "Invalid user ID"},
		{"zero", "0", "Invalid user ID"},
		{"negative", "-3", "Invalid user ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			s := &Server{}
			app.Get("/items/:userId", func(c *fiber.Ctx) error {
				_, _ = s.parseID(c, "userId")
				return nil
			})

			req := httptest.NewRequest(http.MethodGet, "/items/"+tt.value, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedMsg, body["errorMessage"])
		})
	}
}

// --- parseQty ---

func TestParseQty_MissingMeansNoLimit(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	handler := func(c *fiber.Ctx) error {
		qty, err := s.parseQty(c)
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"qty": qty})
	}
	app.Get("/activity/:qty", handler)
	app.Get("/activity", handler)

	req := httptest.NewRequest(http.MethodGet, "/activity", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var body map[string]float64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body["qty"])

	req = httptest.NewRequest(http.MethodGet, "/activity/5", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(5), body["qty"])
}

func TestParseQty_Invalid(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/activity/:qty", func(c *fiber.Ctx) error {
		_, _ = s.parseQty(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/activity/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// --- requireOwner ---

func TestRequireOwner(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		return c.Next()
	})
	app.Get("/mine/:userId", func(c *fiber.Ctx) error {
		ownerID, err := s.parseID(c, "userId")
		if err != nil {
			return nil
		}
		if err := s.requireOwner(c, ownerID); err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/mine/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/mine/8", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PERMISSION_DENIED", body["code"])
}
