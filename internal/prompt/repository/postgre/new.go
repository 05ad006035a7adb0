package postgre

import (
	"database/sql"

	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for prompt configuration.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("prompt/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
