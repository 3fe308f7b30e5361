package handler

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipesafe/backend/internal/auth"
	"github.com/swipesafe/backend/internal/storage"
)

func setupUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	auth.Init("test-secret")
	require.NoError(t, storage.Init(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { storage.Close() })
	return newTestRouter(t, nil, nil)
}

func signupAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/signup", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestSignupAndLogin(t *testing.T) {
	router := setupUserRouter(t)

	token := signupAndLogin(t, router, "alice", "hunter22")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestSignupRejectsBlankCredentials(t *testing.T) {
	router := setupUserRouter(t)

	for _, body := range []map[string]string{
		{"username": "", "password": "secret"},
		{"username": "bob", "password": ""},
		{"username": "   ", "password": "secret"},
	} {
		w := doJSON(t, router, http.MethodPost, "/signup", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username and Password cannot be empty", decodeBody(t, w)["error"])
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	router := setupUserRouter(t)

	signupAndLogin(t, router, "carol", "secret123")

	w := doJSON(t, router, http.MethodPost, "/signup", map[string]string{
		"username": "carol", "password": "other456",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["error"])
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupUserRouter(t)

	signupAndLogin(t, router, "dave", "secret123")

	w := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "dave", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	router := setupUserRouter(t)

	w := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "nobody", "password": "secret",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	router := setupUserRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileAuthorized(t *testing.T) {
	router := setupUserRouter(t)
	token := signupAndLogin(t, router, "erin", "secret123")

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "erin", body["username"])
}

func TestCallHistory(t *testing.T) {
	router := setupUserRouter(t)
	token := signupAndLogin(t, router, "frank", "secret123")

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["history"])

	userID, err := storage.GetUserIDByUsername("frank")
	require.NoError(t, err)
	require.NoError(t, storage.CreateSessionRecord(userID, "session-1", "paypal_scam", 6))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	history, ok := decodeBody(t, w)["history"].([]any)
	require.True(t, ok)
	require.Len(t, history, 1)
	record := history[0].(map[string]any)
	assert.Equal(t, "session-1", record["session_id"])
	assert.Equal(t, "paypal_scam", record["scenario_id"])
	assert.Equal(t, float64(6), record["turns"])
}
