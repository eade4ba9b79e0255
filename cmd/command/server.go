package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"labqueue/internal/access"
	"labqueue/internal/config"
	"labqueue/internal/directory"
	"labqueue/internal/handlers"
	"labqueue/internal/queue"
	"labqueue/internal/server"
	"labqueue/internal/storage"
	"labqueue/internal/tasks"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run queue server",
		Run: func(_ *cobra.Command, _ []string) {
			if err := cmd.main(ctx, cfg); err != nil {
				cmd.Logger.WithContext(ctx).Fatal(err)
			}
		},
	}
}

func (cmd Server) main(ctx context.Context, cfg *config.Config) error {
	db, err := storage.ConnectDatabase(cfg.Database, cmd.Logger)
	if err != nil {
		return errors.Wrap(err, "server : failed to connect to database")
	}
	if err := storage.Migrate(db); err != nil {
		return err
	}

	var store queue.Store = storage.NewQueueStore(db)
	if cfg.Database.Driver == config.DriverMemory {
		store = storage.NewMemoryQueueStore()
	}

	opts := []queue.Option{}
	if cfg.Redis.Enabled {
		redisClient, err := storage.InitRedis(ctx, cfg.Redis, cmd.Logger)
		if err != nil {
			return errors.Wrap(err, "server : failed to connect to redis")
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithError(err).Error("server : failed to close redis")
			}
		}()
		opts = append(opts,
			queue.WithLocker(storage.NewRedisLocker(redisClient, cfg.Redis.LockTTL)),
			queue.WithCache(storage.NewSnapshotCache(redisClient, cfg.PollInterval)),
		)
	}

	queues := queue.NewService(store, cmd.Logger, opts...)
	dir := directory.NewService(db, cmd.Logger)
	facade := access.NewFacade(queues, dir, dir, dir, cmd.Logger)

	scheduler, err := tasks.InitScheduler(queues, cfg.Scheduler, cmd.Logger)
	if err != nil {
		return err
	}
	if scheduler != nil {
		defer func() {
			<-scheduler.Stop().Done()
			cmd.Logger.Info("cron scheduler stopped")
		}()
	}

	srv := server.New(cfg.AppEnv, cmd.Logger)
	srv.SetupRoutes(handlers.New(facade, dir, cfg.Queue, cmd.Logger))

	return srv.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port))
}
