package usecase

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

// implUseCase is the private implementation of usage.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new usage UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
