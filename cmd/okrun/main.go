package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/container"
	"github.com/saulo-duarte/okrun-lambda/internal/database"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "okrun",
		Usage: "OKRun API server and admin commands",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
			tokenCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		config.Logger.WithError(err).Fatal("Command failed")
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address, defaults to HTTP_ADDR"},
			&cli.BoolFlag{Name: "migrate", Value: true, Usage: "migrate and seed before serving"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if addr := cmd.String("addr"); addr != "" {
				cfg.HTTPAddr = addr
			}

			c, err := container.New(ctx, cfg)
			if err != nil {
				return err
			}
			if cmd.Bool("migrate") {
				if err := prepare(ctx, c.DB, cfg); err != nil {
					return err
				}
			}
			return runServer(ctx, cfg.HTTPAddr, c.Router())
		},
	}
}

func runServer(ctx context.Context, addr string, handler http.Handler) error {
	log := config.WithContext(ctx)
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			config.InitLogger(cfg.LogLevel)

			db, err := database.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}
			return database.Migrate(ctx, db)
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert the roles and the bootstrap admin",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			config.InitLogger(cfg.LogLevel)

			db, err := database.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}
			return prepare(ctx, db, cfg)
		},
	}
}

func prepare(ctx context.Context, db *gorm.DB, cfg config.Config) error {
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	_, err := database.Seed(ctx, db, cfg.Bootstrap)
	return err
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint a JWT for an existing user (development aid)",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "user", Required: true, Usage: "user id"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			config.InitLogger(cfg.LogLevel)
			if cfg.Auth.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set")
			}
			auth.Init(cfg.Auth.JWTSecret)

			db, err := database.Open(ctx, cfg.DB)
			if err != nil {
				return err
			}

			u, err := user.NewRepository(db).FindByID(ctx, uint(cmd.Uint("user")))
			if err != nil {
				return fmt.Errorf("user %d: %w", cmd.Uint("user"), err)
			}

			token, err := auth.GenerateJWT(u.ID, u.RoleID, cmd.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}
