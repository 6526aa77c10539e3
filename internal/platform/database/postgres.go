package database

import (
	"database/sql"
	"devdosthub/internal/platform/config"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

// DB is the shared connection pool, opened once at startup.
var DB *sql.DB

func Connect() {
	cfg := config.AppConfig

	var err error
	DB, err = sql.Open("pgx", cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	DB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	DB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database %q at %s:%s: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
	}

	log.Printf("Connected to PostgreSQL at %s:%s (pool %d open, %d idle)",
		cfg.DBHost, cfg.DBPort, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
}

func Close() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection closed")
	}
}
