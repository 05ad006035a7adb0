package http

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/usage"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type handler struct {
	l  log.Logger
	uc usage.UseCase
}

// New creates a new HTTP handler for usage stats.
func New(l log.Logger, uc usage.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
