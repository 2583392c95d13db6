package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "valid API key",
			providedKey:    apiKey,
			path:           "/api/v1/game/state",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid API key",
			providedKey:    "wrong-key",
			path:           "/api/v1/game/state",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing API key",
			providedKey:    "",
			path:           "/api/v1/game/state",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "healthz bypasses auth",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics bypasses auth",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			w := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/game/state", nil)
	w := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestSecurityLoggingMiddlewareRateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := SecurityLoggingMiddleware(nil, detector)

	// Exhaust the per-IP budget.
	ip := "203.0.113.7:1234"
	for i := 0; i < rateLimitMaxRequests; i++ {
		req := httptest.NewRequest("GET", "/api/v1/game/state", nil)
		req.RemoteAddr = ip
		w := httptest.NewRecorder()
		middleware(okHandler()).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/v1/game/state", nil)
	req.RemoteAddr = ip
	w := httptest.NewRecorder()
	middleware(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestExtractIP(t *testing.T) {
	t.Run("untrusted proxy ignores forwarded header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "198.51.100.4:5678"
		req.Header.Set(HeaderForwardedFor, "10.0.0.1")

		assert.Equal(t, "198.51.100.4", extractIP(req, nil))
	})

	t.Run("trusted proxy honours forwarded header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "198.51.100.4:5678"
		req.Header.Set(HeaderForwardedFor, "10.0.0.1, 10.0.0.2")

		assert.Equal(t, "10.0.0.2", extractIP(req, []string{"198.51.100.4"}))
	})
}
