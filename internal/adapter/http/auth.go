package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the JWT claims admin tokens carry.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type subjectKey struct{}

// AdminSubject returns the subject of the admin token that authorised the
// request, or "" outside admin routes.
func AdminSubject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)
	return s
}

// RequireAdmin rejects requests without a valid HS256 bearer token (401)
// and tokens whose role claim is not role (403).
func RequireAdmin(secret []byte, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "missing bearer token"})
				return
			}
			var claims AdminClaims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				logger.Debug("rejected admin token", slog.Any("error", err))
				writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "invalid token"})
				return
			}
			if claims.Role != role {
				writeJSON(w, http.StatusForbidden, messageResponse{Message: "admin role required"})
				return
			}
			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
