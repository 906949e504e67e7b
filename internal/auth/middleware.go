package auth

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
)

const CookieName = "jwt"

// AuthMiddleware accepts a bearer token or the jwt cookie. The token only
// identifies the user; role and status are read through actors on every
// request.
func AuthMiddleware(actors ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			tokenStr := bearerToken(r)
			if tokenStr == "" {
				if c, err := r.Cookie(CookieName); err == nil {
					tokenStr = c.Value
				}
			}
			if tokenStr == "" {
				config.Fail(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := ValidateJWT(tokenStr)
			if err != nil {
				log.WithError(err).Warn("Invalid token")
				config.Fail(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			actor, err := actors.ResolveActor(r.Context(), claims.UserID)
			if err != nil {
				if apperror.IsKind(err, apperror.KindNotFound) {
					log.WithField("user_id", claims.UserID).Warn("Token for unknown user")
					config.Fail(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				config.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor.UserID, actor.RoleID)))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
