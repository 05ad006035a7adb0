package usecase

import (
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

// Config tunes registry behavior.
type Config struct {
	// ResetWindow is the quota window length stamped onto newly created
	// model rows.
	ResetWindow time.Duration
}

// implUseCase is the private implementation of credential.UseCase.
type implUseCase struct {
	repo repository.Repository
	cfg  Config
	l    log.Logger
}

// New creates a new credential UseCase implementation.
func New(repo repository.Repository, cfg Config, l log.Logger) *implUseCase {
	if cfg.ResetWindow <= 0 {
		cfg.ResetWindow = 24 * time.Hour
	}
	return &implUseCase{
		repo: repo,
		cfg:  cfg,
		l:    l,
	}
}
