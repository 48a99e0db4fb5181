package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/signlearn/internal/authsvc"
	"github.com/example/signlearn/internal/catalog"
	"github.com/example/signlearn/internal/kvstore"
	"github.com/example/signlearn/internal/session"
	"github.com/example/signlearn/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountRecorder fakes the account-database seams, answering GetByID with
// a fixed record and remembering what got written or revoked
type accountRecorder struct {
	record  models.User
	updated *models.User
	revoked []string
}

func (a *accountRecorder) GetByID(id string) (*models.User, error) {
	record := a.record
	record.ID = id
	return record.Clone(), nil
}

func (a *accountRecorder) UpdateProgress(user *models.User) error {
	a.updated = user.Clone()
	return nil
}

func (a *accountRecorder) Delete(token string) error {
	a.revoked = append(a.revoked, token)
	return nil
}

// emailTakenService settles signup with the taken-email rejection
type emailTakenService struct{}

func (emailTakenService) Login(ctx context.Context, email, password string) (*authsvc.LoginResponse, error) {
	return &authsvc.LoginResponse{Success: false, Error: authsvc.ErrMsgInvalidCredentials}, nil
}

func (emailTakenService) Signup(ctx context.Context, name, email, password string) (*authsvc.SignupResponse, error) {
	return &authsvc.SignupResponse{Success: false, Error: authsvc.ErrMsgEmailTaken}, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	kv := kvstore.NewMemory()
	sessions := session.New(kv, authsvc.NewMock(0))
	sessions.Initialize()

	return New(DefaultConfig(), sessions, catalog.Default(), nil)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func login(t *testing.T, handler http.Handler) {
	t.Helper()

	rec := doJSON(t, handler, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "a@b.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "a@b.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])
	user := payload["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, float64(0), user["learningProgress"])
}

func TestLoginEndpointRejectsEmptyCredentials(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/auth/login", map[string]string{
		"email": "a@b.com",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Invalid credentials", payload["error"])
}

func TestLoginEndpointRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Account created successfully!", decodeBody(t, rec)["message"])

	// Signing up does not sign the visitor in
	me := decodeBody(t, doJSON(t, srv.Handler(), http.MethodGet, "/api/me", nil))
	assert.Equal(t, false, me["isAuthenticated"])
}

func TestSignupEndpointMissingField(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "asha@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestSignupEmailTakenMapsToConflict(t *testing.T) {
	kv := kvstore.NewMemory()
	sessions := session.New(kv, emailTakenService{})
	sessions.Initialize()
	srv := New(DefaultConfig(), sessions, catalog.Default(), nil)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, authsvc.ErrMsgEmailTaken, decodeBody(t, rec)["error"])
}

func TestProgressMirroredToAccountRow(t *testing.T) {
	accounts := &accountRecorder{
		record: models.User{
			Name:             "Asha",
			LearningProgress: 10,
			CompletedLessons: []string{"inter-1"},
		},
	}

	kv := kvstore.NewMemory()
	sessions := session.New(kv, authsvc.NewMock(0))
	sessions.Initialize()
	srv := New(DefaultConfig(), sessions, catalog.Default(), nil)
	srv.UseAccountDatabase(accounts, accounts)

	handler := srv.Handler()
	login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/progress", map[string]interface{}{
		"lessonId": "basic-1",
		"progress": 40,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	require.NotNil(t, accounts.updated)
	assert.Equal(t, 40, accounts.updated.LearningProgress)
	assert.ElementsMatch(t, []string{"inter-1", "basic-1"}, accounts.updated.CompletedLessons)
}

func TestProgressAccountRowStaysMonotonic(t *testing.T) {
	accounts := &accountRecorder{record: models.User{LearningProgress: 80}}

	kv := kvstore.NewMemory()
	sessions := session.New(kv, authsvc.NewMock(0))
	sessions.Initialize()
	srv := New(DefaultConfig(), sessions, catalog.Default(), nil)
	srv.UseAccountDatabase(accounts, accounts)

	handler := srv.Handler()
	login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/progress", map[string]interface{}{
		"lessonId": "basic-1",
		"progress": 40,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	require.NotNil(t, accounts.updated)
	assert.Equal(t, 80, accounts.updated.LearningProgress)
}

func TestLogoutRevokesIssuedToken(t *testing.T) {
	accounts := &accountRecorder{}

	kv := kvstore.NewMemory()
	sessions := session.New(kv, authsvc.NewMock(0))
	sessions.Initialize()
	srv := New(DefaultConfig(), sessions, catalog.Default(), nil)
	srv.UseAccountDatabase(accounts, accounts)

	handler := srv.Handler()
	login(t, handler)
	token := sessions.Token()
	require.NotEmpty(t, token)

	rec := doJSON(t, handler, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{token}, accounts.revoked)

	// A second logout has no token left to revoke
	rec = doJSON(t, handler, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, accounts.revoked, 1)
}

func TestMeReflectsSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	me := decodeBody(t, doJSON(t, handler, http.MethodGet, "/api/me", nil))
	assert.Equal(t, false, me["isAuthenticated"])

	login(t, handler)

	me = decodeBody(t, doJSON(t, handler, http.MethodGet, "/api/me", nil))
	assert.Equal(t, true, me["isAuthenticated"])
	require.NotNil(t, me["user"])

	rec := doJSON(t, handler, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	me = decodeBody(t, doJSON(t, handler, http.MethodGet, "/api/me", nil))
	assert.Equal(t, false, me["isAuthenticated"])
}

func TestProgressRequiresAuthentication(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/progress", map[string]interface{}{
		"lessonId": "basic-1",
		"progress": 20,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProgressUpdatesAndMarksLessons(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()
	login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/progress", map[string]interface{}{
		"lessonId": "basic-1",
		"progress": 17,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	me := decodeBody(t, doJSON(t, handler, http.MethodGet, "/api/me", nil))
	user := me["user"].(map[string]interface{})
	assert.Equal(t, float64(17), user["learningProgress"])

	lessons := decodeBody(t, doJSON(t, handler, http.MethodGet, "/api/lessons", nil))["lessons"].([]interface{})
	completed := map[string]bool{}
	for _, raw := range lessons {
		lesson := raw.(map[string]interface{})
		completed[lesson["id"].(string)], _ = lesson["completed"].(bool)
	}
	assert.True(t, completed["basic-1"])
	assert.False(t, completed["basic-2"])
}

func TestProgressRejectsMissingLessonID(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()
	login(t, handler)

	rec := doJSON(t, handler, http.MethodPost, "/api/progress", map[string]interface{}{
		"progress": 20,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLessonsEndpointFilters(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/lessons?category=basics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lessons := decodeBody(t, rec)["lessons"].([]interface{})
	assert.Len(t, lessons, 3)

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/lessons?search=goodbye", nil)
	lessons = decodeBody(t, rec)["lessons"].([]interface{})
	assert.Len(t, lessons, 1)
}

func TestResourcesEndpointFilters(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/resources?difficulty=advanced", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resources := decodeBody(t, rec)["resources"].([]interface{})
	require.Len(t, resources, 1)
	assert.Equal(t, "Advanced Conversation Patterns", resources[0].(map[string]interface{})["title"])
}

func TestDashboardRequiresAuthentication(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()
	login(t, handler)

	for _, lessonID := range []string{"basic-1", "basic-2", "basic-3"} {
		rec := doJSON(t, handler, http.MethodPost, "/api/progress", map[string]interface{}{
			"lessonId": lessonID,
			"progress": 50,
		})
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(6), stats["totalLessons"])
	assert.Equal(t, float64(3), stats["completedLessons"])
	assert.Equal(t, float64(50), stats["progressPercent"])

	achievements := stats["achievements"].([]interface{})
	require.NotEmpty(t, achievements)
	first := achievements[0].(map[string]interface{})
	assert.Equal(t, "First Steps", first["title"])
	assert.Equal(t, true, first["earned"])
}

func TestParseMinutes(t *testing.T) {
	assert.Equal(t, 5, parseMinutes("5 min"))
	assert.Equal(t, 30, parseMinutes("30 min read"))
	assert.Equal(t, 0, parseMinutes(""))
	assert.Equal(t, 0, parseMinutes("an hour"))
}
