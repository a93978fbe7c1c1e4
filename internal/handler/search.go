package handler

import (
	"errors"

	"translator/internal/domain"
)

// handleDisplayEntries pages through every entry
func (h *Handler) handleDisplayEntries() error {
	h.printSummary()
	_, _, err := h.page(h.dictionary.Len(), h.showEntryAt, pageOptions{exit: true})
	return err
}

// handleSearchWord pages through the entries holding a word in any language
func (h *Handler) handleSearchWord() error {
	word, err := h.readWord("the word to search for")
	if err != nil {
		return err
	}
	h.println()

	return h.browseMatches(domain.Translation{Word: word}, func() {
		h.warn("There's no entry containing the word you provided.")
		h.tip(`Use the "Add Entry" action to add an entry containing the word.`)
	})
}

// handleSearchTranslation pages through the entries holding a translation
func (h *Handler) handleSearchTranslation() error {
	q, err := h.readTranslation("the translation to search for")
	if err != nil {
		return err
	}
	h.println()

	return h.browseMatches(q, func() {
		h.warn("There's no entry containing the translation you provided.")
		h.tip(`Use the "Add Entry" action to add an entry containing the translation.`)
	})
}

func (h *Handler) browseMatches(q domain.Translation, noMatch func()) error {
	count, err := h.dictionary.Search(q)
	if errors.Is(err, domain.ErrNoMatch) {
		noMatch()
		return nil
	}
	if err != nil {
		return err
	}

	_, _, err = h.page(count, func(pos int) error {
		_, entry, err := h.dictionary.MatchAt(q, pos)
		if err != nil {
			return err
		}
		h.printEntry(entry)
		return nil
	}, pageOptions{exit: true})
	return err
}
