package app

import (
	"context"
	"log"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/repository"
	"blogapi/internal/repository/mongostore"
	"blogapi/internal/service"
)

// Closer releases the store connection.
type Closer func(ctx context.Context) error

func App(cfg *config.Config) (*service.Service, Closer) {
	codec, err := auth.NewTokenCodec(cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("failed to build token codec: %v", err)
	}

	repo, closeStore := openStore(cfg)

	services := service.NewService(repo, codec)

	return services, closeStore
}

func openStore(cfg *config.Config) (*repository.Repository, Closer) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		ctx := context.Background()

		m, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}

		if err := mongostore.EnsureIndexes(ctx, m.Database); err != nil {
			log.Fatalf("failed to create mongo indexes: %v", err)
		}

		return mongostore.NewRepository(m.Database), m.Close

	default:
		db, err := database.ConnectDB(cfg.DB)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		return repository.NewRepository(db.DB), func(context.Context) error {
			return db.CloseDB()
		}
	}
}
