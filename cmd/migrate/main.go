package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sayuri-dev/cardfall/cardfall"
	"github.com/sayuri-dev/cardfall/cardfall/database"
	"github.com/sayuri-dev/cardfall/cardfall/logger"
	"github.com/sayuri-dev/cardfall/cardfall/migration"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Imports players, cards and ownership from the legacy MongoDB
// deployment into the game database. Run once before first startup:
//
//	migrate -config config.toml -mongo-uri mongodb://localhost:27017 -mongo-db cardfall
func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	configPath := flag.String("config", "config.toml", "path to config")
	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy MongoDB connection URI")
	mongoDB := flag.String("mongo-db", "cardfall", "legacy MongoDB database name")
	batchSize := flag.Int("batch-size", 500, "insert batch size")
	flag.Parse()

	cfg, err := cardfall.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to open game database", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(-1)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		slog.Error("Failed to connect to MongoDB", slog.Any("error", err))
		os.Exit(-1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("Failed to disconnect from MongoDB", slog.Any("error", err))
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("MongoDB ping failed", slog.Any("error", err))
		os.Exit(-1)
	}

	migrator := migration.NewMigrator(db.BunDB(), client, *mongoDB)
	migrator.SetBatchSize(*batchSize)

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(-1)
	}
}
