package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"kleingarten/internal/transport/http/shared"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/requestcontext"
)

// TokenValidator validates a bearer token and returns the acting user it
// carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (actor string, err error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token's actor in the request context for audit attribution.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access, missing token",
					"request_id", GetRequestID(ctx))
				shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing or invalid Authorization header"))
				return
			}

			actor, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access, invalid token",
					"request_id", GetRequestID(ctx), "error", err)
				shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(ctx, actor)))
		})
	}
}
