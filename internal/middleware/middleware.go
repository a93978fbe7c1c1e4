package middleware

import (
	"fmt"

	"translator/internal/domain"

	"go.uber.org/zap"
)

// HandlerFunc is one shell action
type HandlerFunc func() error

// MiddlewareFunc wraps a shell action
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Counter reports how many entries are stored
type Counter interface {
	Len() int
}

// RequireEntries rejects the action with ErrNoEntries while nothing is stored
func RequireEntries(c Counter) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func() error {
			if c.Len() == 0 {
				return domain.ErrNoEntries
			}
			return next()
		}
	}
}

// Recover turns a panicking action into an error so the shell keeps running
func Recover(logger *zap.Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in action", zap.Any("panic", r), zap.Stack("stack"))
					err = fmt.Errorf("action panicked: %v", r)
				}
			}()
			return next()
		}
	}
}

// Chain applies middlewares so that the first one runs outermost
func Chain(h HandlerFunc, mws ...MiddlewareFunc) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
