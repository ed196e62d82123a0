package sqlite

import (
	"database/sql"

	"personal-assistant/internal/task/repository"
)

type implRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a task repository over an opened, migrated database.
func New(db *sql.DB) *implRepository {
	return &implRepository{db: db}
}
