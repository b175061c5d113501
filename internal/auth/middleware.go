package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
)

type contextKey string

const claimsKey contextKey = "adminClaims"

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// AdminAuthMiddleware accepts a bearer token in the Authorization header. The
// websocket endpoint cannot set headers from a browser, so a token query
// parameter is accepted too.
func AdminAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")
			if header := r.Header.Get("Authorization"); header != "" {
				if !strings.HasPrefix(header, "Bearer ") {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				token = strings.TrimPrefix(header, "Bearer ")
			}
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			claims, err := ParseToken(secret, token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if claims.Role != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type SectionsLoader interface {
	AllowedSections(ctx context.Context) (*entities.AllowedSections, error)
}

// RequireSection lets super-admins through and checks regular admins against
// the allowed sections list.
func RequireSection(loader SectionsLoader, section string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if claims.IsSuperAdmin() {
				next.ServeHTTP(w, r)
				return
			}
			allowed, err := loader.AllowedSections(r.Context())
			if err != nil {
				log.Printf("Could not load allowed sections: %v", err)
				http.Error(w, "Could not check permissions", http.StatusServiceUnavailable)
				return
			}
			if !allowed.Allows(section) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
