package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formrules/internal/application"
	"github.com/dmitrymomot/formrules/pkg/clientip"
	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/httpserver"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/messages"
	"github.com/dmitrymomot/formrules/pkg/pg"
	"github.com/dmitrymomot/formrules/pkg/ratelimiter"
	"github.com/dmitrymomot/formrules/pkg/redis"
	"github.com/dmitrymomot/formrules/pkg/requestid"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

type proxyConfig struct {
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "formrules: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		logCfg   logger.Config
		httpCfg  httpserver.Config
		appCfg   application.Config
		pgCfg    pg.Config
		redisCfg redis.Config
		limitCfg ratelimiter.Config
		proxyCfg proxyConfig
	)
	for _, load := range []func() error{
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&pgCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&proxyCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.NewFromConfig(logCfg,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	msgs, err := loadMessages(ctx, appCfg, log)
	if err != nil {
		return err
	}

	var readiness []func(context.Context) error

	store, closeStore, err := openStore(ctx, pgCfg, log)
	if err != nil {
		return err
	}
	defer closeStore()
	if store.health != nil {
		readiness = append(readiness, store.health)
	}

	limitStore, closeLimits, err := openLimitStore(ctx, redisCfg, log)
	if err != nil {
		return err
	}
	defer closeLimits()
	if limitStore.health != nil {
		readiness = append(readiness, limitStore.health)
	}

	limiter, err := ratelimiter.NewBucket(limitStore.store, limitCfg)
	if err != nil {
		return err
	}

	svc := application.NewService(
		application.NewValidator(appCfg, msgs, time.Now),
		store.store,
		application.WithLogger(log),
		application.WithHashCost(appCfg.PasswordHashCost),
	)

	ips := clientip.NewResolver(proxyCfg.ClientIPHeaders...)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(ips))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, readiness...))
	r.Mount("/applications", application.Routes(svc, log,
		ratelimiter.Middleware(limiter, ips.IP,
			ratelimiter.WithLimitedHandler(application.TooManyRequests),
		),
	))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

type storeBinding[S any] struct {
	store  S
	health func(context.Context) error
}

// openStore uses PostgreSQL when PG_CONN_URL is set and an in-memory store
// otherwise. Migrations run before the store is returned.
func openStore(ctx context.Context, cfg pg.Config, log *slog.Logger) (storeBinding[application.Store], func(), error) {
	if cfg.ConnectionString == "" {
		log.WarnContext(ctx, "PG_CONN_URL not set, applications are kept in memory")
		return storeBinding[application.Store]{store: application.NewMemoryStore()}, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return storeBinding[application.Store]{}, nil, err
	}
	if err := pg.Migrate(ctx, pool, application.Migrations(), cfg, log); err != nil {
		pool.Close()
		return storeBinding[application.Store]{}, nil, err
	}

	return storeBinding[application.Store]{
		store:  application.NewPostgresStore(pool),
		health: pg.Healthcheck(pool),
	}, pool.Close, nil
}

// openLimitStore uses Redis when REDIS_URL is set so limits are shared
// between replicas, and a process-local store otherwise.
func openLimitStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (storeBinding[ratelimiter.Store], func(), error) {
	if cfg.ConnectionURL == "" {
		ms := ratelimiter.NewMemoryStore()
		return storeBinding[ratelimiter.Store]{store: ms}, ms.Close, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return storeBinding[ratelimiter.Store]{}, nil, err
	}
	log.InfoContext(ctx, "rate limits stored in redis")

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("redis close failed", logger.Error(err))
		}
	}
	return storeBinding[ratelimiter.Store]{
		store:  ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("formrules:ratelimit:")),
		health: redis.Healthcheck(client),
	}, closeFn, nil
}

// loadMessages starts from the built-in table and overrides it with entries
// from MESSAGES_FILE when set.
func loadMessages(ctx context.Context, cfg application.Config, log *slog.Logger) (validator.Messages[application.Field], error) {
	msgs := application.DefaultMessages(cfg)
	if cfg.MessagesFile == "" {
		return msgs, nil
	}

	table, err := messages.Load(ctx, cfg.MessagesFile)
	if err != nil {
		return nil, err
	}
	maps.Copy(msgs, validator.MessagesFrom[application.Field](table))

	log.InfoContext(ctx, "message table loaded",
		slog.String("path", cfg.MessagesFile),
		slog.Int("entries", len(table)),
	)
	return msgs, nil
}
