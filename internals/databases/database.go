package databases

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
)

// DB is the shared connection handle, set once by ConnectDB at startup.
var DB *gorm.DB

// ConnectDB opens the Postgres connection, tunes the pool, and verifies the
// server is reachable before the router starts taking traffic.
func ConnectDB() error {
	dsn := configs.DatabaseDSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  configs.NewGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 30))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxLifetime(configs.GetEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute))
	sqlDB.SetConnMaxIdleTime(configs.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", 5*time.Minute))

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	DB = db
	log.Println("[DB] connected")
	return nil
}

// CloseDB releases the pool during shutdown.
func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("[DB] close: %v", err)
			return
		}
	}
	log.Println("[DB] closed")
}
