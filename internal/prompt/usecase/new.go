package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/elhenawym124-ops/chatai-sub002/internal/pattern"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt/repository"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

const (
	composeCacheSize = 512
	// Patterns change out-of-band, so cached compositions expire on a
	// short TTL instead of waiting for an explicit invalidation.
	composeCacheTTL = 5 * time.Minute
)

// implUseCase is the private implementation of prompt.UseCase.
type implUseCase struct {
	repo     repository.Repository
	patterns pattern.Source
	l        log.Logger
	cache    *expirable.LRU[string, prompt.ComposeOutput]
}

// New creates a new prompt UseCase implementation.
func New(repo repository.Repository, patterns pattern.Source, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		patterns: patterns,
		l:        l,
		cache:    expirable.NewLRU[string, prompt.ComposeOutput](composeCacheSize, nil, composeCacheTTL),
	}
}
