package http

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/prompt"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type handler struct {
	l  log.Logger
	uc prompt.UseCase
}

// New creates a new HTTP handler for prompt configuration.
func New(l log.Logger, uc prompt.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
