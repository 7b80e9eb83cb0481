package auth

import (
	"net/http"
	"strings"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/IWeppler/el-manantial/internal/modules/user"
	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// Sessions parses an optional bearer token and attaches the session to the
// request context. Requests without a valid token pass through as guests.
func Sessions(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return secret, nil
				})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session := &Session{UserID: userID, Role: user.Role(claims.Role)}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin rejects requests whose session is missing or not ADMIN.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).IsAdmin() {
			web.Error(w, r, apperr.Unauthorizedf("no autorizado"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
