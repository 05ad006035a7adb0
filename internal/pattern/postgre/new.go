package postgre

import (
	"database/sql"

	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type implSource struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed pattern.Source reading the rows the
// external learning component maintains.
func New(db *sql.DB, l log.Logger) pattern.Source {
	if db == nil {
		panic("pattern/postgre: db is required")
	}
	return &implSource{db: db, l: l}
}
