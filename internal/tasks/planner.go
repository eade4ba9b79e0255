package tasks

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"labqueue/internal/config"
)

// SessionCloser закрывает сессии, открытые дольше maxAge.
type SessionCloser interface {
	CloseStaleSessions(ctx context.Context, maxAge time.Duration) (int, error)
}

// CloseStaleSessions закрывает забытые очереди, чтобы в них нельзя было записаться.
func CloseStaleSessions(closer SessionCloser, maxAge time.Duration, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	closed, err := closer.CloseStaleSessions(ctx, maxAge)
	if err != nil {
		log.WithError(err).WithField("closed", closed).Error("close stale sessions")
		return
	}
	if closed > 0 {
		log.WithField("closed", closed).Info("stale sessions closed")
	}
}

// InitScheduler инициализирует планировщик cron-задач. Возвращает nil, если задач нет.
func InitScheduler(closer SessionCloser, cfg config.Scheduler, log *logrus.Logger) (*cron.Cron, error) {
	if !cfg.Enabled || cfg.SessionMaxAge <= 0 {
		log.Info("scheduler disabled")
		return nil, nil
	}

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(cfg.CloseStaleSpec, func() {
		CloseStaleSessions(closer, cfg.SessionMaxAge, log)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "tasks: schedule %q", cfg.CloseStaleSpec)
	}

	c.Start()
	log.WithFields(logrus.Fields{
		"spec":    cfg.CloseStaleSpec,
		"max_age": cfg.SessionMaxAge.String(),
	}).Info("cron scheduler started")
	return c, nil
}
