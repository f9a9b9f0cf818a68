package httpx

import (
	"net/http"
	"strings"

	"github.com/spendwise/spendwise/pkg/jwtx"
	"github.com/spendwise/spendwise/pkg/slogx"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

// AuthnMiddleware gates protected routes behind a bearer token. An absent
// credential answers 401, a presented-but-bad credential answers 403. On
// success the resolved identity is attached to the request context.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := bearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				WriteError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx = ContextWithIdentity(ctx, Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token segment from an "Authorization: Bearer x"
// header, returning "" when the header or the segment is missing.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
