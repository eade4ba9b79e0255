package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"labqueue/internal/queue"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	DevelopEnv    AppEnv = "develop"
	TestEnv       AppEnv = "test"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type (
	Config struct {
		AppEnv   AppEnv
		LogLevel logrus.Level
		HTTP     HTTP
		Database Database
		Redis    Redis
		// Queue holds the defaults for new sessions.
		Queue queue.Config
		// PollInterval is how often clients refresh; snapshots are cached this long.
		PollInterval time.Duration
		Scheduler    Scheduler
	}

	HTTP struct {
		Port int
	}

	Database struct {
		Driver   string
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
		Path     string // sqlite file
	}

	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
		LockTTL  time.Duration
	}

	Scheduler struct {
		Enabled        bool
		CloseStaleSpec string
		// SessionMaxAge of zero keeps sessions open until toggled or superseded.
		SessionMaxAge time.Duration
	}
)

func setDefaults(v *viper.Viper) {
	def := queue.DefaultConfig()

	v.SetDefault("app.env", string(DevelopEnv))
	v.SetDefault("log.level", "info")
	v.SetDefault("http.port", 8080)

	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "labqueue")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.path", "labqueue.db")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 10*time.Second)

	v.SetDefault("queue.max_slots", def.MaxSlots)
	v.SetDefault("queue.min_max_rule", def.MinMaxRuleEnabled)
	v.SetDefault("queue.priority_min_lab", def.PriorityMinLabEnabled)
	v.SetDefault("queue.max_attempts", def.MaxAttempts)
	v.SetDefault("queue.priority_cohort_limit", def.PriorityCohortLimit)
	v.SetDefault("queue.strict_transitions", def.StrictTransitions)

	v.SetDefault("poll.interval", 5*time.Second)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.close_stale_spec", "0 */10 * * * *")
	v.SetDefault("session.max_age", time.Duration(0))
}

// loadDotEnv reads .env unless ENV_CHEK says the environment is already prepared.
func loadDotEnv() error {
	if os.Getenv("ENV_CHEK") != "" {
		return nil
	}
	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "config: stat .env")
	}
	return errors.Wrap(godotenv.Load(), "config: load .env")
}

// Load reads configuration from the environment (DB_HOST, QUEUE_MAX_SLOTS, ...).
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, errors.Wrap(err, "config: LOG_LEVEL")
	}

	cfg := &Config{
		AppEnv:   AppEnv(v.GetString("app.env")),
		LogLevel: level,
		HTTP:     HTTP{Port: v.GetInt("http.port")},
		Database: Database{
			Driver:   strings.ToLower(v.GetString("db.driver")),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			Path:     v.GetString("db.path"),
		},
		Redis: Redis{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			LockTTL:  v.GetDuration("redis.lock_ttl"),
		},
		Queue: queue.Config{
			MaxSlots:              v.GetInt("queue.max_slots"),
			MinMaxRuleEnabled:     v.GetBool("queue.min_max_rule"),
			PriorityMinLabEnabled: v.GetBool("queue.priority_min_lab"),
			MaxAttempts:           v.GetInt("queue.max_attempts"),
			PriorityCohortLimit:   v.GetInt("queue.priority_cohort_limit"),
			StrictTransitions:     v.GetBool("queue.strict_transitions"),
		},
		PollInterval: v.GetDuration("poll.interval"),
		Scheduler: Scheduler{
			Enabled:        v.GetBool("scheduler.enabled"),
			CloseStaleSpec: v.GetString("scheduler.close_stale_spec"),
			SessionMaxAge:  v.GetDuration("session.max_age"),
		},
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, errors.Errorf("config: unknown DB_DRIVER %q", cfg.Database.Driver)
	}
	if err := cfg.Queue.Validate(); err != nil {
		return nil, errors.Wrap(err, "config: queue defaults")
	}
	return cfg, nil
}

// NewLogger builds the process logger: JSON in production, text elsewhere.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	if c.AppEnv == ProductionEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
