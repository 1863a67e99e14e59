package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/config"
	"github.com/wellnest/wellnest-server/internal/store/storetest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.NewForTesting()
	signer := auth.NewSigner([]byte(cfg.JWTSecret), cfg.TokenTTL())
	srv := httptest.NewServer(NewRouter(storetest.NewMemory(), signer, cfg))
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with an optional bearer token and decodes the
// response body into a generic map.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// doJSONList is doJSON for endpoints that return a top-level array.
func doJSONList(t *testing.T, srv *httptest.Server, method, path, token string) (int, []map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var out []map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	status, body := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Sam",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)

	registerUser(t, srv, "sam@example.com")

	status, body := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "sam@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, me := doJSON(t, srv, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "sam@example.com", me["email"])
	assert.Equal(t, "Sam", me["name"])
	assert.NotContains(t, me, "passwordHash")

	// Duplicate registration is rejected regardless of email casing.
	status, _ = doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Sam2", "email": "SAM@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Wrong password and unknown email fail identically.
	status, wrongPw := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "sam@example.com", "password": "nope99",
	})
	require.Equal(t, http.StatusBadRequest, status)
	status, noUser := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, wrongPw["message"], noUser["message"])
}

func TestTokenGate(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, srv, http.MethodGet, "/api/moods/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token, authorization denied.", body["message"])

	status, body = doJSON(t, srv, http.MethodGet, "/api/moods/history", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token is not valid.", body["message"])

	// A token signed with a different secret is rejected even if well formed.
	foreign := auth.NewSigner([]byte("other-secret"), time.Hour)
	tok, err := foreign.Issue("some-user")
	require.NoError(t, err)
	status, _ = doJSON(t, srv, http.MethodGet, "/api/moods/history", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMoodSameDayCollapses(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "mood@example.com")

	status, _ := doJSON(t, srv, http.MethodPost, "/api/moods", token, map[string]interface{}{
		"mood": "happy", "reason": "morning run", "sleep": 8, "physical": 7,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, srv, http.MethodPost, "/api/moods", token, map[string]interface{}{
		"mood": "sad", "reason": "long meeting",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Daily stats saved successfully", body["message"])

	status, list := doJSONList(t, srv, http.MethodGet, "/api/moods/history", token)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, "sad", list[0]["mood"])
	assert.Equal(t, "long meeting", list[0]["reason"])
	// Omitted scores fall back to the midpoint default.
	assert.Equal(t, float64(5), list[0]["sleep"])

	// An unknown mood label is a validation error.
	status, _ = doJSON(t, srv, http.MethodPost, "/api/moods", token, map[string]interface{}{
		"mood": "elated",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthMonthGrid(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "health@example.com")

	status, _ := doJSON(t, srv, http.MethodPost, "/api/health", token, map[string]interface{}{
		"fatigueLevel": 3, "sleepHours": 7.5, "sleepQuality": 8, "stress": 2,
	})
	require.Equal(t, http.StatusOK, status)

	// Missing fields are rejected before touching the store.
	status, body := doJSON(t, srv, http.MethodPost, "/api/health", token, map[string]interface{}{
		"fatigueLevel": 3, "sleepHours": 7.5,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "All fields are required", body["message"])

	now := time.Now().UTC()
	path := fmt.Sprintf("/api/health/month?year=%d&month=%d", now.Year(), int(now.Month()))
	status, grid := doJSON(t, srv, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, status)

	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	require.Len(t, grid, days)

	todayKey := fmt.Sprintf("%d-%d-%d", now.Day(), int(now.Month()), now.Year())
	require.Contains(t, grid, todayKey)
	entry, ok := grid[todayKey].(map[string]interface{})
	require.True(t, ok, "today should hold metrics, got %v", grid[todayKey])
	assert.Equal(t, float64(7.5), entry["sleepHours"])

	// Every other day of the month is an explicit null.
	emptyKey := ""
	for k, v := range grid {
		if k != todayKey && v == nil {
			emptyKey = k
			break
		}
	}
	if days > 1 {
		assert.NotEmpty(t, emptyKey)
	}

	status, _ = doJSON(t, srv, http.MethodGet, "/api/health/month?year=2024&month=13", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestReminderLifecycleAndOwnership(t *testing.T) {
	srv := newTestServer(t)
	owner := registerUser(t, srv, "owner@example.com")
	other := registerUser(t, srv, "other@example.com")

	// Full weekday names are rejected; only mon..sun abbreviations are valid.
	status, _ := doJSON(t, srv, http.MethodPost, "/api/reminders", owner, map[string]interface{}{
		"title": "Stretch", "time": "07:30", "days": []string{"monday", "friday"},
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, created := doJSON(t, srv, http.MethodPost, "/api/reminders", owner, map[string]interface{}{
		"title": "Stretch", "time": "07:30", "days": []string{"mon", "fri"},
	})
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["reminderId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, created["isActive"])

	// Another authenticated user cannot touch it.
	status, _ = doJSON(t, srv, http.MethodPut, "/api/reminders/"+id, other, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/reminders/"+id, other, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Owner partial update keeps untouched fields.
	status, updated := doJSON(t, srv, http.MethodPut, "/api/reminders/"+id, owner, map[string]interface{}{
		"time": "21:15",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Stretch", updated["title"])
	assert.Equal(t, "21:15", updated["time"])

	status, completed := doJSON(t, srv, http.MethodPost, "/api/reminders/"+id+"/complete", owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, completed["lastCompleted"])

	// Malformed IDs are rejected before any lookup.
	status, body := doJSON(t, srv, http.MethodDelete, "/api/reminders/not-a-uuid", owner, nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid reminder ID", body["message"])

	status, body = doJSON(t, srv, http.MethodDelete, "/api/reminders/"+id, owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Reminder removed", body["message"])

	status, _ = doJSON(t, srv, http.MethodDelete, "/api/reminders/"+id, owner, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, list := doJSONList(t, srv, http.MethodGet, "/api/reminders", owner)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)

	// An empty day set is valid and means a one-time reminder.
	status, oneTime := doJSON(t, srv, http.MethodPost, "/api/reminders", owner, map[string]interface{}{
		"title": "Dentist", "time": "14:00", "days": []string{},
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, []interface{}{}, oneTime["days"])
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	status, body := doJSON(t, srv, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = doJSON(t, srv, http.MethodGet, "/api/ping/db", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
