package usecase

import (
	"time"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/internal/quota"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

// Config tunes router behavior.
type Config struct {
	// CallTimeout bounds each individual provider call. The request
	// context still governs the route as a whole.
	CallTimeout time.Duration
}

// implUseCase is the private implementation of routing.UseCase.
type implUseCase struct {
	credentials credential.UseCase
	composer    prompt.UseCase
	usage       usage.UseCase
	tracker     *quota.Tracker
	caller      routing.Caller
	cfg         Config
	l           log.Logger
}

// New creates a new routing UseCase implementation.
func New(
	credentials credential.UseCase,
	composer prompt.UseCase,
	usageUC usage.UseCase,
	tracker *quota.Tracker,
	caller routing.Caller,
	cfg Config,
	l log.Logger,
) *implUseCase {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	return &implUseCase{
		credentials: credentials,
		composer:    composer,
		usage:       usageUC,
		tracker:     tracker,
		caller:      caller,
		cfg:         cfg,
		l:           l,
	}
}
