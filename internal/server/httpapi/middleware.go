package httpapi

import (
	"context"
	"net/http"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/server/models"
)

type contextKey int

const currentUserKey contextKey = iota

// requireAuth verifies the session cookie and attaches the authenticated
// user to the request context. Any failure yields the same 401 body.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		user, err := s.users.ResolveToken(r.Context(), cookie.Value)
		if err != nil {
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the user placed in the context by requireAuth.
func currentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(currentUserKey).(*models.User)
	return user
}
