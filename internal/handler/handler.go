// Package handler implements the interactive terminal shell over the
// dictionary service.
package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"translator/internal/middleware"
	"translator/internal/service"

	"go.uber.org/zap"
)

var errInvalidAction = errors.New("unknown action id")

// Handler manages all shell interactions
type Handler struct {
	in         *bufio.Reader
	out        io.Writer
	dictionary *service.DictionaryService
	stats      *service.StatsService
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	in io.Reader,
	out io.Writer,
	dictionary *service.DictionaryService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		in:         bufio.NewReader(in),
		out:        out,
		dictionary: dictionary,
		stats:      stats,
		logger:     logger,
	}
}

// Run shows the main menu until the user exits or the input ends
func (h *Handler) Run() error {
	h.handleStart()

	for {
		choice, err := h.readChoice(mainMenu())
		if err != nil {
			return h.finish(err)
		}
		h.println()

		switch choice {
		case "M":
			err = h.handleManageData()
		case "T":
			err = h.handleTranslate()
		case "X":
			h.logger.Info("Shell exited")
			return nil
		default:
			h.fail(errInvalidAction)
		}
		if err != nil {
			return h.finish(err)
		}
	}
}

func (h *Handler) finish(err error) error {
	if errors.Is(err, io.EOF) {
		h.logger.Info("Input closed, leaving shell")
		return nil
	}
	return err
}

// run executes one menu action and reports its failure.
// Only input errors are returned, so the menu loop keeps going otherwise.
func (h *Handler) run(action middleware.HandlerFunc, needsEntries bool) error {
	mws := []middleware.MiddlewareFunc{middleware.Recover(h.logger)}
	if needsEntries {
		mws = append(mws, middleware.RequireEntries(h.dictionary))
	}

	err := middleware.Chain(action, mws...)()
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return err
	}
	h.report(err)
	return nil
}

func (h *Handler) println(a ...interface{}) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.out, format, a...)
}
