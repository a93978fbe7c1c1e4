package handler

import (
	"fmt"

	"github.com/gookit/color"
)

// pageOptions configures which actions a pager offers besides Previous/Next
type pageOptions struct {
	// selectLabel, when set, offers "[n] selectLabel" for the shown position.
	selectLabel string
	// exit offers "[X] Exit".
	exit bool
}

// page walks positions 1..total one at a time. show renders a position.
// It returns the position the user stopped at and whether it was selected.
func (h *Handler) page(total int, show func(pos int) error, opts pageOptions) (int, bool, error) {
	pos := 1
	for {
		h.printf("Entry %d of %d\n", pos, total)
		if err := show(pos); err != nil {
			return pos, false, err
		}

		moved := false
		for !moved {
			h.println()
			if pos > 1 {
				h.println(" [P] <-- Previous")
			}
			if pos < total {
				h.println(" [N] --> Next")
			}
			if opts.selectLabel != "" {
				h.printf(" [%d] %s\n", pos, opts.selectLabel)
			}
			if opts.exit {
				h.println()
				h.println(color.Red.Sprint(" [X] Exit"))
			}
			h.println()

			choice, err := h.readChoice("> ")
			if err != nil {
				return pos, false, err
			}
			h.println()

			switch {
			case choice == "P" && pos > 1:
				pos--
				moved = true
			case choice == "N" && pos < total:
				pos++
				moved = true
			case opts.selectLabel != "" && choice == fmt.Sprint(pos):
				return pos, true, nil
			case opts.exit && choice == "X":
				return pos, false, nil
			default:
				h.fail(errInvalidAction)
			}
		}
	}
}
