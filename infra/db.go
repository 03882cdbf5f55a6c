package infra

import (
	"fmt"
	"time"

	"gin-items/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupDB opens the database selected by cfg:
// DATABASE_URL、DB_NAMEの順にPostgreSQLを使い、どちらもなければSQLite
func SetupDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	switch {
	case cfg.DatabaseURL != "":
		return openPostgres(cfg.DatabaseURL, logger)
	case cfg.DBName != "":
		logger.Info("Connecting to postgres",
			zap.String("host", cfg.DBHost),
			zap.String("user", cfg.DBUser),
			zap.String("dbname", cfg.DBName),
			zap.String("port", cfg.DBPort))
		return openPostgres(cfg.PostgresDSN(), logger)
	default:
		return OpenSQLite(cfg.SQLiteDSN, logger)
	}
}

func openPostgres(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("Setup postgres database")
	return db, nil
}

// OpenSQLite opens a SQLite database. In-memory databases only live as long as
// a connection does, so the pool is pinned to a single connection.
func OpenSQLite(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("connect to sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	logger.Info("Setup sqlite database", zap.String("dsn", dsn))
	return db, nil
}

func gormConfig(logger *zap.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
