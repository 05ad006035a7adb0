package http

import (
	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type handler struct {
	l  log.Logger
	uc credential.UseCase
}

// New creates a new HTTP handler for credential administration.
func New(l log.Logger, uc credential.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
