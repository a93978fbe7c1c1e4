package handler

import (
	"errors"

	"translator/internal/domain"

	"github.com/gookit/color"
	"go.uber.org/zap"
)

func mainMenu() string {
	return " [M] Manage Data\n" +
		" [T] Translate\n" +
		"\n" +
		color.Red.Sprint(" [X] Exit") + "\n" +
		"\n" +
		"> "
}

func manageMenu() string {
	return "What would you like to do?\n" +
		" [1] Add Entry\n" +
		" [2] Add Translations\n" +
		" [3] Delete Entry\n" +
		" [4] Delete Translations\n" +
		" [5] Display All Entries\n" +
		" [6] Search Word\n" +
		" [7] Search Translations\n" +
		" [8] Export\n" +
		" [9] Import\n" +
		"\n" +
		color.Red.Sprint(" [X] Exit") + "\n" +
		"\n" +
		"> "
}

// handleStart greets the user
func (h *Handler) handleStart() {
	h.logger.Info("Shell started")

	h.println()
	h.println("Simple " + color.Blue.Sprint("Translator"))
	h.println("Manage translation entries, then translate words with them.")
	h.println()
}

func hint(s string) string {
	return color.Yellow.Sprint(s)
}

func (h *Handler) success(format string, a ...interface{}) {
	h.println(color.Green.Sprintf(format, a...))
}

func (h *Handler) warn(format string, a ...interface{}) {
	h.println(color.Yellow.Sprintf(format, a...))
}

func (h *Handler) tip(message string) {
	h.println()
	h.println(color.BgGreen.Sprint("TIP:") + " " + color.Green.Sprint(message))
}

func (h *Handler) fail(err error) {
	h.logger.Debug("Reporting error", zap.Error(err))
	h.println(color.BgRed.Sprint("ERROR:") + " " + color.Red.Sprint(errorMessage(err)))
}

// report prints err as a warning or an error, whichever fits
func (h *Handler) report(err error) {
	var capacity *domain.CapacityError
	switch {
	case errors.As(err, &capacity):
		h.warn("You have reached the maximum number of %s.", capacity.What)
	case errors.Is(err, domain.ErrNoMatch):
		h.warn("There's no entry containing what you provided.")
	default:
		h.fail(err)
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidAction), errors.Is(err, domain.ErrIndexInvalid):
		return "Unknown ID, please pick from the provided options."
	case errors.Is(err, domain.ErrWriteFailed):
		return "The program could not create or overwrite the file."
	case errors.Is(err, domain.ErrReadFailed):
		return "The program could not open and read the file."
	case errors.Is(err, domain.ErrNoEntries):
		return "No entries are present at the moment."
	default:
		return "The program encountered an unknown error."
	}
}

// handleManageData runs the Manage Data menu. Leaving it discards the entries.
func (h *Handler) handleManageData() error {
	for {
		choice, err := h.readChoice(manageMenu())
		if err != nil {
			return err
		}
		h.println()
		h.logger.Debug("Manage Data action", zap.String("choice", choice))

		switch choice {
		case "1":
			err = h.run(h.handleAddEntry, false)
		case "2":
			err = h.run(h.handleAddTranslations, true)
		case "3":
			err = h.run(h.handleDeleteEntry, true)
		case "4":
			err = h.run(h.handleDeleteTranslations, true)
		case "5":
			err = h.run(h.handleDisplayEntries, true)
		case "6":
			err = h.run(h.handleSearchWord, true)
		case "7":
			err = h.run(h.handleSearchTranslation, true)
		case "8":
			err = h.run(h.handleExport, true)
		case "9":
			err = h.run(h.handleImport, false)
		case "X":
			h.dictionary.Reset()
			return nil
		default:
			h.fail(errInvalidAction)
		}
		if err != nil {
			return err
		}
		h.println()
	}
}
