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

	"github.com/rs/zerolog"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/service"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/crypto"
	mongostore "github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/db/mongo"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/db/postgres"
	redisstore "github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/db/redis"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/infrastructure/http/handlers"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/pkg/config"
	"github.com/sowmya-komirishetti-7/entity-mapping/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                      Entity Mapping API
// @version                    1.0
// @description                Basic-auth protected customer, person and gadget management.
// @BasePath                   /
// @securityDefinitions.basic  BasicAuth
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "entity-mapping",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close(log)

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(st.credentials, hasher, logger.Component("auth"))
	gate := service.NewGate(service.DefaultRules)
	customerService := service.NewCustomerService(st.customers, st.keys, logger.Component("customers"))

	if cfg.Admin.SeedAdmin() {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	} else {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, no admin identity seeded")
	}

	e := api.NewRouter(api.Dependencies{
		Logger:    log,
		Auth:      authService,
		Gate:      gate,
		Customers: customerService,
		Readiness: st.readiness,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

type stores struct {
	credentials ports.CredentialStore
	customers   ports.CustomerStore
	keys        ports.IdempotencyStore
	readiness   map[string]handlers.Pinger
	closers     []func(context.Context) error
}

func (s *stores) close(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			log.Warn().Err(err).Msg("close dependency")
		}
	}
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	st := &stores{readiness: map[string]handlers.Pinger{}}

	switch cfg.Store.Driver {
	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, client.Disconnect)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			st.close(log)
			return nil, err
		}
		st.credentials = mongostore.NewIdentityRepository(db)
		st.customers = mongostore.NewCustomerRepository(client, db)
		st.readiness["mongodb"] = mongostore.Pinger{Client: client}

	default:
		db, err := postgres.Open(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		st.closers = append(st.closers, func(context.Context) error { return db.Close() })
		st.credentials = postgres.NewIdentityStore(db)
		st.customers = postgres.NewCustomerStore(db)
		st.readiness["postgres"] = postgres.Pinger{DB: db}
	}

	if cfg.Redis.Enabled {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			// Idempotency keys are best effort; run without them.
			log.Warn().Err(err).Msg("redis unavailable, Idempotency-Key headers will be ignored")
			return st, nil
		}
		st.closers = append(st.closers, func(context.Context) error { return rdb.Close() })
		st.keys = redisstore.NewIdempotencyStore(rdb)
		st.readiness["redis"] = redisstore.Pinger{Client: rdb}
	}

	return st, nil
}
