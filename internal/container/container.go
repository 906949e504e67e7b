package container

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/cache"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/database"
	"github.com/saulo-duarte/okrun-lambda/internal/department"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/middlewares"
	"github.com/saulo-duarte/okrun-lambda/internal/objective"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
	"github.com/saulo-duarte/okrun-lambda/internal/router"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

type Container struct {
	Config              config.Config
	DB                  *gorm.DB
	Cache               cache.Cache
	AuthHandler         *auth.Handler
	RoleContainer       *role.RoleContainer
	DepartmentContainer *department.DepartmentContainer
	CycleContainer      *cycle.CycleContainer
	ObjectiveContainer  *objective.ObjectiveContainer
	KeyResultContainer  *keyresult.KeyResultContainer
	UserContainer       *user.UserContainer
	RateLimit           func(http.Handler) http.Handler
}

// New connects to the database and the cache described by cfg and wires
// every domain container.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	config.InitLogger(cfg.LogLevel)
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	auth.Init(cfg.Auth.JWTSecret)

	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	c, err := newCache(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	return Build(cfg, db, c)
}

// Build wires the containers on an open database and cache.
func Build(cfg config.Config, db *gorm.DB, c cache.Cache) (*Container, error) {
	var rateLimit func(http.Handler) http.Handler
	if cfg.RateLimit != "" {
		mw, err := middlewares.RateLimit(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		rateLimit = mw
	}

	roleContainer := role.NewRoleContainer(db)
	departmentContainer := department.NewDepartmentContainer(db)
	cycleContainer := cycle.NewCycleContainer(db)
	objectiveContainer := objective.NewObjectiveContainer(db, cycleContainer.Service)
	keyResultContainer := keyresult.NewKeyResultContainer(db, objectiveContainer.Service, cycleContainer.Service)
	userContainer := user.NewUserContainer(db, departmentContainer.Service, c)

	return &Container{
		Config:              cfg,
		DB:                  db,
		Cache:               c,
		AuthHandler:         auth.NewHandler(cfg.Auth.CookieDomain),
		RoleContainer:       roleContainer,
		DepartmentContainer: departmentContainer,
		CycleContainer:      cycleContainer,
		ObjectiveContainer:  objectiveContainer,
		KeyResultContainer:  keyResultContainer,
		UserContainer:       userContainer,
		RateLimit:           rateLimit,
	}, nil
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		AuthHandler:       c.AuthHandler,
		RoleHandler:       c.RoleContainer.Handler,
		DepartmentHandler: c.DepartmentContainer.Handler,
		CycleHandler:      c.CycleContainer.Handler,
		ObjectiveHandler:  c.ObjectiveContainer.Handler,
		KeyResultHandler:  c.KeyResultContainer.Handler,
		UserHandler:       c.UserContainer.Handler,
		Actors:            c.UserContainer.Service,
		CorsOrigins:       c.Config.CORS,
		TrustProxy:        c.Config.TrustProxy,
		RateLimit:         c.RateLimit,
	})
}

func newCache(ctx context.Context, cfg config.RedisConfig) (cache.Cache, error) {
	if cfg.Addr == "" {
		config.WithContext(ctx).Info("REDIS_ADDR not set, using in-memory cache")
		return cache.NewMemoryCache(), nil
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return cache.NewRedisCache(client, "okrun:"), nil
}
