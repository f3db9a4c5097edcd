package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/dmitrymomot/myflix/pkg/config"
	"github.com/dmitrymomot/myflix/pkg/logger"
	"github.com/dmitrymomot/myflix/pkg/mongo"
	"github.com/dmitrymomot/myflix/svc/movie"
)

func main() {
	path := flag.String("file", "data/movies.yaml", "YAML catalog to load")
	flag.Parse()

	log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), "myflix-seed"))

	if err := run(context.Background(), log, *path); err != nil {
		log.Error("seed failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	movies, err := movie.DecodeCatalog(f)
	if err != nil {
		return err
	}

	var cfg mongo.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	db, err := mongo.NewWithDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	store := movie.NewMongoStore(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	n, err := movie.Seed(ctx, store, movies)
	if err != nil {
		return err
	}
	log.Info("catalog seeded", slog.Int("movies", n), slog.String("file", path))
	return nil
}
