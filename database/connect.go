package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aiclub/website-backend/config"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

const (
	TypePostgres = "postgres"
	TypeSupabase = "supa"
	TypeSQLite   = "sqlite"
)

// Options selects and tunes the backing store.
type Options struct {
	Type            string
	DSN             string
	Replicas        []string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          logger.Interface
}

// OptionsFromConfig picks the store the same way on every entry point:
// DATABASE_URL wins, DB_TYPE=supa builds a Supabase DSN, anything else falls
// back to the SQLite file at SQLITE_PATH.
func OptionsFromConfig(c map[string]string) Options {
	opts := Options{
		Replicas:        config.GetList(c, "DATABASE_REPLICA_URLS", nil),
		MaxOpenConns:    config.GetInt(c, "DB_MAX_OPEN_CONNS", 0),
		MaxIdleConns:    config.GetInt(c, "DB_MAX_IDLE_CONNS", 0),
		ConnMaxLifetime: config.GetSeconds(c, "DB_CONN_MAX_AGE_SECONDS", 600*time.Second),
	}

	switch dbType := strings.ToLower(config.GetString(c, "DB_TYPE", "")); {
	case config.GetString(c, "DATABASE_URL", "") != "":
		opts.Type = TypePostgres
		opts.DSN = config.GetString(c, "DATABASE_URL", "")
	case dbType == TypeSupabase:
		opts.Type = TypePostgres
		opts.DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
	default:
		opts.Type = TypeSQLite
		opts.DSN = config.GetString(c, "SQLITE_PATH", "db.sqlite3")
	}
	return opts
}

// NewLogger is the SQL logger used outside of tests.
func NewLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func dialector(dbType, dsn string) (gorm.Dialector, error) {
	switch dbType {
	case TypePostgres:
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case TypeSQLite:
		return OpenSQLite(dsn), nil
	default:
		return nil, errors.Errorf("unsupported database type %q", dbType)
	}
}

// Connect opens the primary connection, registers read replicas and checks the
// connection with a ping.
func Connect(opts Options) (*gorm.DB, error) {
	primary, err := dialector(opts.Type, opts.DSN)
	if err != nil {
		return nil, err
	}

	gormLogger := opts.Logger
	if gormLogger == nil {
		gormLogger = NewLogger()
	}

	db, err := gorm.Open(primary, &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", opts.Type)
	}

	if len(opts.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(opts.Replicas))
		for _, dsn := range opts.Replicas {
			replica, err := dialector(opts.Type, dsn)
			if err != nil {
				return nil, err
			}
			replicas = append(replicas, replica)
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}).SetConnMaxLifetime(opts.ConnMaxLifetime)
		if opts.MaxOpenConns > 0 {
			resolver = resolver.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			resolver = resolver.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "register read replicas")
		}
		zlog.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}
	return db, nil
}
