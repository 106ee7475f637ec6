// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type IdentityContextKey string

var IdentityKey IdentityContextKey = "giuson_identity"

// Identifier resolves a bearer token to an identity.
type Identifier interface {
	Identify(ctx context.Context, uow repository.UnitOfWork, token string) (*service.Identity, error)
}

// Authenticate resolves the bearer token of every request and stores the
// identity in the request context. Requests without a usable token are
// rejected with 401, tokens of deleted users with 403.
func Authenticate(store repository.Store, identifier Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			id, err := identifier.Identify(r.Context(), store.Session(r.Context()), token)
			if err != nil {
				switch domain.KindOf(err) {
				case domain.KindUnauthenticated:
					respondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				case domain.KindUnauthorized:
					respondWithError(w, http.StatusForbidden, "Unauthorized")
				default:
					slog.ErrorContext(r.Context(), "Failed to identify caller", "error", err, "requestID", chimw.GetReqID(r.Context()))
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects with 403 callers whose role is not one of roles. It
// must run after Authenticate.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := IdentityFrom(r.Context())
			if err := service.RequireRole(id, roles...); err != nil {
				if domain.KindOf(err) == domain.KindUnauthenticated {
					respondWithError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				respondWithError(w, http.StatusForbidden, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(ctx context.Context) (*service.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(*service.Identity)
	return id, ok && id != nil
}

// WithIdentity returns a context carrying id, as Authenticate would.
func WithIdentity(ctx context.Context, id *service.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
