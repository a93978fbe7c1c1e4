package handler

import (
	"errors"
	"strings"

	"translator/internal/domain"

	"github.com/gookit/color"
)

// handleExport writes the stored entries to a file
func (h *Handler) handleExport() error {
	name, err := h.readFileName("Input your preferred name for the output file")
	if err != nil {
		return err
	}
	h.println()

	path, err := h.dictionary.Export(name)
	if err != nil {
		return err
	}
	h.success("Exported the entries into the file `%s`!", path)
	return nil
}

// handleImport adds the entries of a file. When entries are already stored
// each imported one is shown and confirmed first.
func (h *Handler) handleImport() error {
	return h.importFile("Input the name of the file to import")
}

func (h *Handler) importFile(prompt string) error {
	name, err := h.readFileName(prompt)
	if err != nil {
		return err
	}
	h.println()

	wasEmpty := h.dictionary.Len() == 0
	var inputErr error
	confirm := func(entry domain.Entry) bool {
		if inputErr != nil {
			return false
		}
		h.printEntry(entry)
		h.println()
		ok, err := h.confirm("Add this entry?")
		h.println()
		if err != nil {
			inputErr = err
			return false
		}
		return ok
	}

	result, err := h.dictionary.Import(name, confirm)
	if inputErr != nil {
		return inputErr
	}

	var capacity *domain.CapacityError
	if err != nil && !errors.As(err, &capacity) {
		return err
	}

	switch {
	case wasEmpty && result.Added > 0:
		h.success("Added the entries into the stored list!")
	case result.Added > 0:
		h.success("Added %d of the entries into the stored list!", result.Added)
	default:
		h.warn("No entries were added.")
	}
	if result.Dropped > 0 {
		h.warn("Left out %d translations over the limit of %d per entry.",
			result.Dropped, h.dictionary.Limits().MaxTranslations)
	}
	if capacity != nil {
		h.warn("Left out %d entries over the limit of %d.", result.Skipped, capacity.Limit)
	}
	return nil
}

func translateMenu() string {
	return " [T] Translate a Word\n" +
		"\n" +
		color.Red.Sprint(" [X] Exit") + "\n" +
		"\n" +
		"> "
}

// handleTranslate loads a file of entries and translates words with them.
// Leaving the menu discards the entries.
func (h *Handler) handleTranslate() error {
	if err := h.run(func() error {
		return h.importFile("Input the name of the file containing the translation data")
	}, false); err != nil {
		return err
	}
	defer h.dictionary.Reset()

	if h.dictionary.Len() == 0 {
		h.println()
		return nil
	}

	for {
		h.println()
		choice, err := h.readChoice(translateMenu())
		if err != nil {
			return err
		}
		h.println()

		switch choice {
		case "T":
			if err := h.run(h.translateWord, true); err != nil {
				return err
			}
		case "X":
			return nil
		default:
			h.fail(errInvalidAction)
		}
	}
}

func (h *Handler) translateWord() error {
	source, err := h.readTranslation("the word to translate")
	if err != nil {
		return err
	}
	target, err := h.readToken(
		"Input the language to translate into "+hint("(maximum of 20 characters)")+": ",
		domain.MaxTokenLength,
	)
	if err != nil {
		return err
	}
	h.println()

	words, err := h.dictionary.Translate(source, target)
	if errors.Is(err, domain.ErrNoMatch) {
		h.warn("There's no %s translation for the %s word `%s`.", target, source.Language, source.Word)
		return nil
	}
	if err != nil {
		return err
	}

	h.success("%s: %s", target, strings.Join(words, ", "))
	return nil
}
