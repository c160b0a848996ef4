package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.responses["POST /auth/login"] = `{"token":"issued-token"}`
	upstream.responses["GET /auth/me"] = `{"customer_id":1,"role":"admin","email":"admin@example.com"}`
	r, _ := newTestRouter(t, upstream)

	w := doJSONRequest(t, r, http.MethodPost, "/v1/login", "", map[string]any{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"issued-token"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)

	assert.Equal(t, []string{"POST /auth/login", "GET /auth/me"}, upstream.recorded())
}

func TestLoginBadCredentialsPassThrough(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.statuses["POST /auth/login"] = http.StatusUnauthorized
	upstream.responses["POST /auth/login"] = `{"error":"Invalid credentials"}`
	r, _ := newTestRouter(t, upstream)

	w := doJSONRequest(t, r, http.MethodPost, "/v1/login", "", map[string]any{
		"email":    "someone@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginRejectsMalformedInput(t *testing.T) {
	upstream := newFakeUpstream()
	r, _ := newTestRouter(t, upstream)

	w := doJSONRequest(t, r, http.MethodPost, "/v1/login", "", map[string]any{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, upstream.recorded())
}

func TestRegisterProxiesUpstream(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.statuses["POST /auth/register"] = http.StatusCreated
	upstream.responses["POST /auth/register"] = `{"message":"User registered"}`
	r, _ := newTestRouter(t, upstream)

	w := doJSONRequest(t, r, http.MethodPost, "/v1/register", "", map[string]any{
		"first_name": "Jamie",
		"last_name":  "Doe",
		"email":      "jamie@example.com",
		"password":   "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	upstream := newFakeUpstream()
	r, _ := newTestRouter(t, upstream)

	w := doRequest(t, r, http.MethodGet, "/v1/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeStaleTokenSurfacesUpstream401(t *testing.T) {
	upstream := newFakeUpstream()
	upstream.statuses["GET /auth/me"] = http.StatusUnauthorized
	upstream.responses["GET /auth/me"] = `{"error":"Token has expired"}`
	r, _ := newTestRouter(t, upstream)

	w := doRequest(t, r, http.MethodGet, "/v1/me", signTestToken(t, "user"))
	// the upstream 401 passes through so the caller clears its session copy
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}
