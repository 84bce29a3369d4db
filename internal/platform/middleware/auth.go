package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the claims required on the admin surface.
type AdminClaims struct {
	Subject string
	Role    string
}

type contextKeyAdmin struct{}

// ContextKeyAdmin is exported for use in handlers.
var ContextKeyAdmin = contextKeyAdmin{}

// GetAdminSubject retrieves the authenticated admin subject from the context.
func GetAdminSubject(ctx context.Context) string {
	claims, ok := ctx.Value(ContextKeyAdmin).(AdminClaims)
	if !ok {
		return ""
	}
	return claims.Subject
}

// RequireAdmin validates the bearer token on admin routes. Tokens are HS256
// JWTs signed with the configured key and must carry role "admin".
func RequireAdmin(signingKey string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}

			claims := jwt.MapClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(signingKey), nil
			})
			if err != nil || !parsed.Valid {
				logger.WarnContext(r.Context(), "unauthorized admin access - invalid token",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				unauthorized(w)
				return
			}

			role, _ := claims["role"].(string)
			if role != "admin" {
				unauthorized(w)
				return
			}
			sub, _ := claims["sub"].(string)

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, AdminClaims{Subject: sub, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Invalid or expired token"}`))
}
