package middleware

import (
	"github.com/elhenawym124-ops/chatai-sub002/pkg/log"
)

type Middleware struct {
	l         log.Logger
	jwtSecret string
}

func New(l log.Logger, jwtSecret string) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: jwtSecret,
	}
}
