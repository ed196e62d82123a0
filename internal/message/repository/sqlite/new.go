package sqlite

import (
	"database/sql"

	"personal-assistant/internal/message/repository"
)

type implRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a message repository over an opened, migrated database.
func New(db *sql.DB) *implRepository {
	return &implRepository{db: db}
}
