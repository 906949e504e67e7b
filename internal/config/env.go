package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Env        string
	HTTPAddr   string
	DB         DBConfig
	Redis      RedisConfig
	Auth       AuthConfig
	CORS       string
	TrustProxy bool
	RateLimit  string
	LogLevel   string
	Bootstrap  BootstrapConfig
}

type DBConfig struct {
	Driver string
	DSN    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret    string
	CookieDomain string
}

type BootstrapConfig struct {
	AdminEmail string
	AdminName  string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	trustProxy, _ := strconv.ParseBool(getEnv("TRUST_PROXY", "false"))

	return Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Driver: getEnv("DB_DRIVER", "postgres"),
			DSN:    getEnv("DATABASE_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			CookieDomain: getEnv("COOKIE_DOMAIN", ""),
		},
		CORS:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
		TrustProxy: trustProxy,
		RateLimit:  getEnv("RATE_LIMIT", "300-M"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Bootstrap: BootstrapConfig{
			AdminEmail: getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@okrun.local"),
			AdminName:  getEnv("BOOTSTRAP_ADMIN_NAME", "Administrator"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
