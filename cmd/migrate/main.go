package main

import (
	"context"
	"time"

	mongoMigration "flamesblue/internal/migrations/mongo"
	"flamesblue/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	if !cfg.MongoConfigured() {
		cfg.Log.Fatal("DATABASE_URL and DATABASE_NAME are required for migrations")
	}

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	mongoClient, err := cfg.Client.MongoClient()
	if err != nil {
		cfg.Log.Fatal("MongoDB is not reachable", "error", err)
	}

	cfg.Log.Info("Starting Mongo migration job")
	if err := mongoMigration.RunMigration(ctx, mongoClient.Database(cfg.MongoDatabaseName), cfg.Log); err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	cfg.Log.Info("Migration completed successfully")
}
