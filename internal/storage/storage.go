package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"labqueue/internal/config"
	"labqueue/internal/models"
)

// ConnectDatabase opens the configured SQL database. The memory driver keeps
// queues in process and the directory in an in-memory sqlite database.
func ConnectDatabase(cfg config.Database, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	case config.DriverMemory:
		dialector = sqlite.Open("file::memory:?cache=shared")
	default:
		return nil, errors.Errorf("storage: unknown driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.Wrap(err, "storage: connect database")
	}
	if cfg.Driver != config.DriverPostgres {
		// sqlite serializes writers anyway; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "storage: sqlite handle")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.WithField("driver", cfg.Driver).Info("database connected")
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(models.All()...), "storage: migrate")
}

// InitRedis connects and pings Redis.
func InitRedis(ctx context.Context, cfg config.Redis, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "storage: ping redis at %s", cfg.Addr)
	}
	log.WithFields(logrus.Fields{"addr": cfg.Addr, "db": cfg.DB}).Info("redis connected")
	return client, nil
}
