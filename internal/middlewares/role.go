package middlewares

import (
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

// RequireRole lets through only actors holding one of roles. It must run
// after auth.AuthMiddleware.
func RequireRole(roles ...role.ID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := auth.ActorFromContext(r.Context())
			if err != nil {
				config.Fail(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			for _, allowed := range roles {
				if actor.RoleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			config.WithContext(r.Context()).
				WithField("user_id", actor.UserID).
				WithField("role", actor.RoleID.String()).
				Warn("Role not allowed")
			config.Fail(w, http.StatusForbidden, "you do not have permission to perform this action")
		})
	}
}
