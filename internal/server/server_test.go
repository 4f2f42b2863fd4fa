package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wellspring/internal/cache"
	"wellspring/internal/config"
	"wellspring/internal/database"
	"wellspring/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret-not-for-production-use",
		Port:      "0",
		Env:       "test",
	}
}

func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	return newTestAppWithRedis(t, nil)
}

func newTestAppWithRedis(t *testing.T, rdb *redis.Client) (*fiber.App, *Server) {
	t.Helper()
	cache.SetClient(nil)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	srv, err := NewServerWithDeps(testConfig(), db, rdb)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerUser(t *testing.T, app *fiber.App, username, email string) string {
	t.Helper()
	resp, err := app.Test(newRequest(t, "POST", "/api/auth/register", fiber.Map{
		"username": username,
		"email":    email,
		"password": "SecurePass12",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	auth := decodeBody[AuthResponse](t, resp)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func authedRequest(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	req := newRequest(t, method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(newRequest(t, "POST", "/api/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "SecurePass12",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	auth := decodeBody[AuthResponse](t, resp)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "alice", auth.User.Username)
	// Password hash never leaves the API.
	raw, _ := json.Marshal(auth.User)
	assert.NotContains(t, string(raw), "password")
}

func TestRegisterConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	// Same username, different email.
	resp, err := app.Test(newRequest(t, "POST", "/api/auth/register", fiber.Map{
		"username": "alice", "email": "other@example.com", "password": "SecurePass12",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Same email, different username.
	resp, err = app.Test(newRequest(t, "POST", "/api/auth/register", fiber.Map{
		"username": "bob", "email": "alice@example.com", "password": "SecurePass12",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginFailureIsUniform(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	wrongPass, err := app.Test(newRequest(t, "POST", "/api/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "WrongPass12",
	}))
	require.NoError(t, err)
	unknownEmail, err := app.Test(newRequest(t, "POST", "/api/auth/login", fiber.Map{
		"email": "ghost@example.com", "password": "SecurePass12",
	}))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownEmail.StatusCode)

	// Identical bodies: the response never reveals which part was wrong.
	bodyA := decodeBody[models.ErrorResponse](t, wrongPass)
	bodyB := decodeBody[models.ErrorResponse](t, unknownEmail)
	assert.Equal(t, bodyA, bodyB)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/users/me", "/api/activities/", "/api/dashboard/summary"} {
		resp, err := app.Test(newRequest(t, "GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	resp, err := app.Test(func() *http.Request {
		req := newRequest(t, "GET", "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		return req
	}())
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogAndListActivities(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "POST", "/api/activities/", token, fiber.Map{
		"type": "Running", "steps": 4000, "distance_km": 4.2, "calories": 250, "duration_minutes": 25,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	entry := decodeBody[models.ActivityEntry](t, resp)
	assert.Equal(t, models.ActivityRunning, entry.Type)
	assert.NotZero(t, entry.ID)
	assert.NotZero(t, entry.UserID)

	resp, err = app.Test(authedRequest(t, "GET", "/api/activities/?period=daily", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	entries := decodeBody[[]models.ActivityEntry](t, resp)
	assert.Len(t, entries, 1)
}

func TestLogActivityRejectsInvalid(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "POST", "/api/activities/", token, fiber.Map{
		"type": "Jogging",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "POST", "/api/activities/", token, fiber.Map{
		"type": "Running", "steps": -1,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListRejectsUnknownPeriod(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "GET", "/api/moods/?period=yearly", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteEntryOwnershipGuard(t *testing.T) {
	app, _ := newTestApp(t)
	aliceToken := registerUser(t, app, "alice", "alice@example.com")
	bobToken := registerUser(t, app, "bob", "bob@example.com")

	resp, err := app.Test(authedRequest(t, "POST", "/api/moods/", aliceToken, fiber.Map{
		"rating": 8,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	entry := decodeBody[models.MoodEntry](t, resp)

	// Bob cannot delete Alice's entry, and cannot tell it exists.
	resp, err = app.Test(authedRequest(t, "DELETE", fmt.Sprintf("/api/moods/%d", entry.ID), bobToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Alice can.
	resp, err = app.Test(authedRequest(t, "DELETE", fmt.Sprintf("/api/moods/%d", entry.ID), aliceToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// A second delete reports NotFound.
	resp, err = app.Test(authedRequest(t, "DELETE", fmt.Sprintf("/api/moods/%d", entry.ID), aliceToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardSummaryAndWindowedData(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	old := time.Now().UTC().AddDate(0, 0, -15).Format(time.RFC3339)
	for _, body := range []fiber.Map{
		{"hours": 6.0, "quality": "Good"},
		{"hours": 8.0, "quality": "Fair", "occurred_on": old},
	} {
		resp, err := app.Test(authedRequest(t, "POST", "/api/sleep/", token, body))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	for _, body := range []fiber.Map{
		{"rating": 5}, {"rating": 5}, {"rating": 8},
	} {
		resp, err := app.Test(authedRequest(t, "POST", "/api/moods/", token, body))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	resp, err := app.Test(authedRequest(t, "POST", "/api/nutrition/", token, fiber.Map{
		"calories": 1500.0, "protein_g": 80.0, "carbs_g": 120.0, "fats_g": 40.0,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Summary spans the full history, including the 15-day-old entry.
	resp, err = app.Test(authedRequest(t, "GET", "/api/dashboard/summary", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	summary := decodeBody[struct {
		AverageSleepHours float64        `json:"average_sleep_hours"`
		TotalCalories     float64        `json:"total_calories"`
		MoodFrequency     map[string]int `json:"mood_frequency"`
	}](t, resp)
	assert.InDelta(t, 7.0, summary.AverageSleepHours, 1e-9)
	assert.InDelta(t, 1500.0, summary.TotalCalories, 1e-9)
	assert.Equal(t, map[string]int{"5": 2, "8": 1}, summary.MoodFrequency)

	// The windowed path excludes the old sleep entry.
	resp, err = app.Test(authedRequest(t, "GET", "/api/dashboard/data?period=weekly", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody[struct {
		Period            string  `json:"period"`
		AverageSleepHours float64 `json:"average_sleep_hours"`
	}](t, resp)
	assert.Equal(t, "weekly", data.Period)
	assert.InDelta(t, 6.0, data.AverageSleepHours, 1e-9)

	resp, err = app.Test(authedRequest(t, "GET", "/api/dashboard/data?period=hourly", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProfileLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "PUT", "/api/users/me", token, fiber.Map{
		"first_name": "Alice", "bio": "runner", "location": "Oslo",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/users/me", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := decodeBody[models.User](t, resp)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "runner", user.Bio)
}

func TestDeleteAccountCascades(t *testing.T) {
	app, srv := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "POST", "/api/moods/", token, fiber.Map{"rating": 7}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "DELETE", "/api/users/me", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var moodCount int64
	require.NoError(t, srv.db.Model(&models.MoodEntry{}).Count(&moodCount).Error)
	assert.Zero(t, moodCount)

	var userCount int64
	require.NoError(t, srv.db.Model(&models.User{}).Count(&userCount).Error)
	assert.Zero(t, userCount)

	// Login for the deleted account fails like any bad credential.
	resp, err = app.Test(newRequest(t, "POST", "/api/auth/login", fiber.Map{
		"email": "alice@example.com", "password": "SecurePass12",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteAccountRevokesToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	app, _ := newTestAppWithRedis(t, rdb)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "DELETE", "/api/users/me", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The token that authenticated the delete must not outlive the account:
	// it is rejected as revoked, not merely bounced off a missing user row.
	resp, err = app.Test(authedRequest(t, "GET", "/api/users/me", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, "Token has been revoked", body.Error)
}

func TestLogoutRevokesToken(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	app, _ := newTestAppWithRedis(t, rdb)
	token := registerUser(t, app, "alice", "alice@example.com")

	resp, err := app.Test(authedRequest(t, "POST", "/api/auth/logout", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/users/me", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEmptyWindowListsAreArrays(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "alice", "alice@example.com")

	// A user with nothing in the window gets an empty array, never null.
	for _, path := range []string{"/api/activities/", "/api/nutrition/", "/api/sleep/", "/api/moods/"} {
		resp, err := app.Test(authedRequest(t, "GET", path, token, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "path %s", path)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(raw)), "path %s", path)
	}

	resp, err := app.Test(authedRequest(t, "GET", "/api/dashboard/data", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"activities":[]`)
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(newRequest(t, "GET", "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(newRequest(t, "GET", "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
