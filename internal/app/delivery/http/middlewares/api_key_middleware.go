package middlewares

import (
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/exceptions"
	"medassist-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireServiceAPIKey guards the admin routes. The key is compared against
// APP_SERVICE_API_KEY; an empty configured key rejects everything, so the
// admin surface is closed by default.
func (m *Middlewares) RequireServiceAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		configuredKey := m.InternalConfig.App.ServiceAPIKey
		if configuredKey == "" || apiKey != configuredKey {
			m.Log.Warn("rejected admin request with invalid api key",
				zap.String("ip", r.RemoteAddr),
				zap.String("endpoint", r.URL.Path),
				zap.String("method", r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
