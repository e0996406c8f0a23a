package database

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Open connects to the store selected by DB_TYPE:
//   - postgres: DATABASE_URL
//   - supa:     SUPABASE_DB_HOST/USER/PASSWORD/NAME/PORT
//   - sqlite:   SQLITE_PATH
//
// For the postgres flavours DB_REPLICA_DSN, when set, registers a read replica.
func Open(c map[string]string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		PrepareStmt:    false,
		Logger:         newGormLogger(c),
		TranslateError: true,
	}

	dbType := strings.ToLower(config.GetString(c, "DB_TYPE", ""))
	zlog.Info().Str("dbType", dbType).Msg("Connecting to database")

	var (
		db  *gorm.DB
		err error
	)
	switch dbType {
	case "postgres":
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return nil, errs.NewConfigMissingError("DATABASE_URL")
		}
		db, err = gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), gormConfig)
	case "supa":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		db, err = gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), gormConfig)
	case "sqlite":
		path := config.GetString(c, "SQLITE_PATH", "portfolio.db")
		db, err = OpenSQLite(SQLiteFileDSN(path), gormConfig)
	default:
		return nil, errs.NewConfigInvalidError("DB_TYPE", fmt.Sprintf("unsupported value %q", dbType))
	}
	if err != nil {
		return nil, fmt.Errorf("connect to %s database: %w", dbType, err)
	}

	if replicaDSN := config.GetString(c, "DB_REPLICA_DSN", ""); replicaDSN != "" && dbType != "sqlite" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replicaDSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		zlog.Info().Msg("Read replica registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	return db, nil
}

// SQLiteFileDSN turns a path into a DSN with foreign keys enforced
func SQLiteFileDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", path)
}

// OpenSQLite opens a sqlite database. A single connection is used so that
// in-memory databases are shared by every query of the handle.
func OpenSQLite(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if gormConfig == nil {
		gormConfig = &gorm.Config{TranslateError: true}
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func newGormLogger(c map[string]string) logger.Interface {
	level := logger.Warn
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             config.GetSeconds(c, "DB_SLOW_QUERY_SECONDS", 2),
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  config.GetString(c, "LOG_FORMAT", "json") == "console",
		},
	)
}
