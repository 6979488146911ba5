package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func Connect(databaseURL string) (*sql.DB, error) {
	// Log database connection attempt (without credentials)
	logSafeDatabaseURL(databaseURL)

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	log.Info().Msg("Database connection established")
	return db, nil
}

// logSafeDatabaseURL logs the database URL without exposing credentials
func logSafeDatabaseURL(databaseURL string) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		log.Info().Msg("Database: connecting (URL parse error)")
		return
	}

	safeURL := &url.URL{
		Scheme:   parsed.Scheme,
		Host:     parsed.Host,
		Path:     parsed.Path,
		RawQuery: parsed.RawQuery,
	}
	if parsed.User != nil {
		if username := parsed.User.Username(); username != "" {
			safeURL.User = url.User(username)
		}
	}

	log.Info().Str("url", safeURL.String()).Msg("Database: connecting")
}
