package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/department"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/middlewares"
	"github.com/saulo-duarte/okrun-lambda/internal/objective"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

type RouterConfig struct {
	AuthHandler       *auth.Handler
	RoleHandler       *role.Handler
	DepartmentHandler *department.Handler
	CycleHandler      *cycle.Handler
	ObjectiveHandler  *objective.Handler
	KeyResultHandler  *keyresult.Handler
	UserHandler       *user.Handler
	// Actors loads the role and status behind every token.
	Actors auth.ActorResolver

	// CorsOrigins is "*" or a comma-separated allow-list.
	CorsOrigins string
	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
	// RateLimit is optional.
	RateLimit func(http.Handler) http.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.Success(w, http.StatusOK, "ok", nil)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(cfg.Actors))

		r.Mount("/roles", role.Routes(cfg.RoleHandler))
		r.Mount("/departments", department.Routes(cfg.DepartmentHandler))
		r.Mount("/cycles", cycle.Routes(cfg.CycleHandler))
		r.Mount("/objectives", objective.Routes(cfg.ObjectiveHandler))
		r.Mount("/objectives/{objectiveId}/key-results", keyresult.Routes(cfg.KeyResultHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler, middlewares.RequireRole(role.Admin)))
		r.Mount("/profile", user.ProfileRoutes(cfg.UserHandler))

		r.Get("/cycles/{id}/detail", cfg.ObjectiveHandler.CycleDetail)
	})
	return r
}
