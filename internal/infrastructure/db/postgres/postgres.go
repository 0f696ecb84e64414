package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/starsky/backend/internal/core/domain"
)

// Connect opens a gorm connection to Postgres. TranslateError is enabled so
// driver-level unique violations surface as gorm.ErrDuplicatedKey and the
// repositories can map them to domain errors.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for all persisted records.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Team{}, &domain.TeamMember{})
}
