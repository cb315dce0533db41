package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookowl/backend/auth"
	"github.com/bookowl/backend/handlers"
	"github.com/bookowl/backend/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	tokens := auth.NewTokenService([]byte("handler-test-secret"), time.Minute)
	return handlers.NewRouter(handlers.New(db, tokens))
}

// doJSON performs a request against the router, optionally attaching a
// bearer token and a JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// bootstrapAdmin creates the admin account and returns its access token.
func bootstrapAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/create_admin_user", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin-pass",
		"is_admin": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	return login(t, router, "admin@example.com", "admin-pass")
}

// registerUser creates a regular user through the admin API and returns the
// new user's access token.
func registerUser(t *testing.T, router *gin.Engine, adminToken, email, password string) string {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/create_user", adminToken, gin.H{
		"email":    email,
		"password": password,
		"is_admin": false,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	return login(t, router, email, password)
}

func login(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	resp := doJSON(t, router, http.MethodPost, "/token", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody(t, resp)
	require.Equal(t, "bearer", body["token_type"])
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
