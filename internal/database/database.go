package database

import (
	"fmt"
	"time"

	"github.com/psucert/certserve/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectReturnGormDB opens a pooled Postgres connection. Driver errors are
// left untranslated on purpose: the repository layer inspects pgconn errors
// to learn which unique index a conflicting insert hit.
func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB_HOST, cfg.DB_PORT, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)

	maxIdleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		maxIdleTime = 15 * time.Minute
	}
	sqlDb.SetConnMaxIdleTime(maxIdleTime)

	if err := sqlDb.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
