package middlewares

import (
	"medassist-service/internal/app/config"
	"medassist-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireServiceAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-service-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			ServiceAPIKey: testAPIKey,
		},
	}

	middlewares := NewMiddlewares(logger, internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/snapshots", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/snapshots", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/snapshots", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/snapshots", nil)
		req.Header.Set(constvars.HeaderAPIKey, "TEST-SERVICE-API-KEY-12345")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for case-mismatched API key")
	})

	t.Run("Whitespace in API Key", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/snapshots", nil)
		req.Header.Set(constvars.HeaderAPIKey, " "+testAPIKey+" ")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for API key with whitespace")
	})
}

func TestRequireServiceAPIKey_UnconfiguredKey(t *testing.T) {
	logger := zap.NewNop()

	middlewares := NewMiddlewares(logger, &config.InternalConfig{})

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Empty Configured Key Rejects Everything", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/admin/snapshots/last-sync", nil)
		req.Header.Set(constvars.HeaderAPIKey, "")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireServiceAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized when no key is configured")
	})
}
