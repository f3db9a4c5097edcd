package main

import (
	"context"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/myflix"
	"github.com/dmitrymomot/myflix/pkg/config"
	"github.com/dmitrymomot/myflix/pkg/httpserver"
	"github.com/dmitrymomot/myflix/pkg/logger"
	"github.com/dmitrymomot/myflix/pkg/metrics"
	"github.com/dmitrymomot/myflix/pkg/mongo"
	"github.com/dmitrymomot/myflix/pkg/ratelimiter"
	"github.com/dmitrymomot/myflix/pkg/redis"
	"github.com/dmitrymomot/myflix/pkg/requestid"
	"github.com/dmitrymomot/myflix/svc/auth"
	"github.com/dmitrymomot/myflix/svc/movie"
	"github.com/dmitrymomot/myflix/svc/user"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"myflix"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	opts := []logger.Option{
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if appCfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(appCfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("api stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		mongoCfg mongo.Config
		redisCfg redis.Config
		authCfg  auth.Config
		cacheCfg movie.CacheConfig
		limitCfg myflix.RateLimitConfig
		httpCfg  httpserver.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&mongoCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&cacheCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&httpCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	users := user.NewMongoStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	movies := movie.NewMongoStore(db)
	if err := movies.EnsureIndexes(ctx); err != nil {
		return err
	}

	m := metrics.New(metrics.WithRuntimeCollectors())
	checks := []httpserver.Check{mongo.Healthcheck(db.Client())}

	var limiterStore ratelimiter.Store
	if redisCfg.Enabled() {
		var client *goredis.Client
		client, err = redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		limiterStore = ratelimiter.NewRedisStore(client)
		checks = append(checks, redis.Healthcheck(client))
		log.Info("login rate limiter uses redis")
	} else {
		memStore := ratelimiter.NewMemoryStore()
		defer memStore.Close()
		limiterStore = memStore
		log.Info("login rate limiter uses process memory")
	}
	bucket, err := ratelimiter.NewBucket(limiterStore, limitCfg.Login)
	if err != nil {
		return err
	}

	authSvc, err := auth.NewFromConfig(authCfg, users,
		auth.WithLogger(log),
		auth.WithRecorder(m),
	)
	if err != nil {
		return err
	}

	router := myflix.NewRouter(myflix.Deps{
		Auth:            authSvc,
		Movies:          movie.NewCachedStore(movies, cacheCfg, movie.WithCacheObserver(m.CacheLookup)),
		Logger:          log,
		Metrics:         m,
		LoginLimiter:    bucket,
		ReadinessChecks: checks,
	})

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, router)
}
