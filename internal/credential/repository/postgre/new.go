package postgre

import (
	"database/sql"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the credential registry.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("credential/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
