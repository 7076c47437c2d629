package rest

import (
	"net/http"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// AuthMiddleware guards the admin surface. It accepts only a valid
// Bearer token issued by the auth use case.
func AuthMiddleware(auth usecases_port.AuthUseCase) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			subject, err := auth.Validate(token)
			if err != nil {
				logger := contextkeys.LoggerFromContext(r.Context())
				logger.Warn("Rejected admin request", port.Fields{"reason": err.Error()})
				WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := contextkeys.ContextWithLogger(r.Context(),
				contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"admin": subject}))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
