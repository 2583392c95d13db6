package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/repository"
)

const testAPIKey = "test-api-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat := catalog.Default()
	eng := engine.New(cat, repository.NewMemoryStore(), engine.Options{})
	return NewServer(0, testAPIKey, nil, nil, eng, cat)
}

func do(srv *Server, method, path, apiKey string, body *bytes.Buffer) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if apiKey != "" {
		req.Header.Set(HeaderAPIKey, apiKey)
	}
	w := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestServerPublicEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("healthz", func(t *testing.T) {
		w := do(srv, "GET", "/healthz", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readyz without database", func(t *testing.T) {
		w := do(srv, "GET", "/readyz", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("version", func(t *testing.T) {
		w := do(srv, "GET", "/version", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_version")
	})

	t.Run("metrics", func(t *testing.T) {
		w := do(srv, "GET", "/metrics", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestServerRequiresAPIKey(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, "GET", "/api/v1/catalog/cities", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(srv, "GET", "/api/v1/catalog/cities", testAPIKey, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerGameFlow(t *testing.T) {
	srv := newTestServer(t)

	body := bytes.NewBufferString(fmt.Sprintf(`{"name":"Router Test","city_id":"%s"}`, catalog.CityLosAngeles))
	w := do(srv, "POST", "/api/v1/game/new", testAPIKey, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(srv, "GET", "/api/v1/game/state", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Router Test")

	w = do(srv, "POST", "/api/v1/job/start", testAPIKey, bytes.NewBufferString(`{"job":"cashier"}`))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(srv, "POST", "/api/v1/game/tick", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(srv, "GET", "/api/v1/gigs/upcoming", testAPIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Security headers are applied to API responses.
	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
}
