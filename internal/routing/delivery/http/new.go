package http

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type handler struct {
	l  log.Logger
	uc routing.UseCase
}

// New creates a new HTTP handler for message routing.
func New(l log.Logger, uc routing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
