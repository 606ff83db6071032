package auth

import (
	"net/http"

	"github.com/isanz/inkwell-be/internal/models"
)

// UserFinder is the slice of the credential store the resolver needs.
type UserFinder interface {
	FindByID(id string) (models.User, error)
}

// ResolveIdentity recovers the caller's identity from the session cookie on
// every request. It never fails the request: a missing cookie, a malformed
// or expired token, a bad signature, and a stale user id all degrade to
// anonymous, so "not logged in" and "bad token" are indistinguishable
// downstream. This is the only place session tokens are decoded.
func ResolveIdentity(codec TokenCodec, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := Anonymous

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				if userID, err := codec.Verify(cookie.Value); err == nil {
					if user, err := users.FindByID(userID); err == nil {
						identity = Identity{User: &user}
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireUser gates a route on a resolved identity. Anonymous callers are
// sent back to the landing page rather than rejected with a 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()).IsAnonymous() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
