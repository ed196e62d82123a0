package sqlite

import (
	"database/sql"

	"personal-assistant/internal/email/repository"
)

type implRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an email repository over an opened, migrated database.
func New(db *sql.DB) *implRepository {
	return &implRepository{db: db}
}
