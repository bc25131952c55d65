package util

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user-registry/model"
)

func InitDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "userregistry")
	port := getEnv("DB_PORT", "5432")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Bootstrap: create the application database if it does not exist yet.
	maintenanceDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=%s",
		host, user, password, port, sslmode)

	tempDB, err := gorm.Open(postgres.Open(maintenanceDSN), &gorm.Config{})
	if err != nil {
		Logger.Fatal().Err(err).Msg("failed to connect to Postgres instance")
	}

	var exists bool
	checkSQL := fmt.Sprintf("SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = '%s')", dbName)
	tempDB.Raw(checkSQL).Scan(&exists)

	if !exists {
		Logger.Info().Str("database", dbName).Msg("database not found, creating")
		if err := tempDB.Exec(fmt.Sprintf("CREATE DATABASE %s", dbName)).Error; err != nil {
			Logger.Fatal().Err(err).Msg("failed to create database")
		}
	}

	sqlDB, _ := tempDB.DB()
	sqlDB.Close()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbName, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger.Fatal().Err(err).Msg("failed to connect to application database")
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Role{},
	); err != nil {
		Logger.Fatal().Err(err).Msg("migration failed")
	}

	pgDB, err := db.DB()
	if err != nil {
		Logger.Fatal().Err(err).Msg("failed to get underlying DB object")
	}

	// Pool sizing: bounded concurrent queries, warm idle connections,
	// recycle every 30 minutes to avoid stale connections.
	pgDB.SetMaxOpenConns(50)
	pgDB.SetMaxIdleConns(50)
	pgDB.SetConnMaxLifetime(30 * time.Minute)

	Logger.Info().Msg("database connected, migrated, and pool configured")
	return db
}
