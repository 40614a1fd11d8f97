package database

import (
	"fmt"

	"github.com/mhngo/quiznest/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection used by every repository.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("Failed to connect to database")
		return nil, fmt.Errorf("connecting to database %q: %w", cfg.Database.Name, err)
	}

	log.Info().Str("db", cfg.Database.Name).Msg("Database connected")
	return db, nil
}
