package postgre

import (
	"database/sql"

	"github.com/elhenawym124-ops/chatai-sub002/internal/usage/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for usage records.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("usage/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
