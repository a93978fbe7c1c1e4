package handler

import (
	"translator/internal/domain"
	"translator/internal/store"

	"github.com/gookit/color"
	"go.uber.org/zap"
)

// handleAddEntry adds entries until the user stops or the store is full.
// A translation that already exists is only added after confirmation.
func (h *Handler) handleAddEntry() error {
	limits := h.dictionary.Limits()
	if h.dictionary.Len() >= limits.MaxEntries {
		return &domain.CapacityError{What: "entries", Limit: limits.MaxEntries}
	}

	for {
		first, err := h.readTranslation("the first translation in the entry")
		if err != nil {
			return err
		}

		adding := true
		if count := h.dictionary.Duplicates(first); count > 0 {
			h.println()
			h.warn("%d stored entries already contain this translation.", count)
			h.printEntry(domain.NewEntry(first))
			h.println()
			if adding, err = h.confirm("Is this a new entry?"); err != nil {
				return err
			}
		}

		if adding {
			if err := h.dictionary.AddEntry(first); err != nil {
				return err
			}
			h.println()
			h.success("Added the entry into the stored list!")
		}
		h.println()

		if h.dictionary.Len() >= limits.MaxEntries {
			return &domain.CapacityError{What: "entries", Limit: limits.MaxEntries}
		}
		more, err := h.confirm("Add another entry?")
		if err != nil || !more {
			return err
		}
		h.println()
	}
}

// handleAddTranslations finds an entry by one of its translations and adds
// new translations to it
func (h *Handler) handleAddTranslations() error {
	limits := h.dictionary.Limits()
	index := store.NotFound

	for {
		if index == store.NotFound {
			found, err := h.pickEntry()
			if err != nil || found == store.NotFound {
				return err
			}
			index = found
		}

		entry, err := h.dictionary.Entry(index)
		if err != nil {
			return err
		}
		if entry.Len() >= limits.MaxTranslations {
			return &domain.CapacityError{What: "translations", Limit: limits.MaxTranslations}
		}

		translation, err := h.readTranslation("the new translation in the entry")
		if err != nil {
			return err
		}
		if index, err = h.dictionary.AddTranslation(index, translation); err != nil {
			return err
		}
		h.println()
		h.success("Added the translation into the entry!")
		h.println()

		if entry, err = h.dictionary.Entry(index); err != nil {
			return err
		}
		if entry.Len() >= limits.MaxTranslations {
			return &domain.CapacityError{What: "translations", Limit: limits.MaxTranslations}
		}

		more, err := h.confirm("Add another translation?")
		if err != nil || !more {
			return err
		}
		same, err := h.confirm("Add to the same entry?")
		if err != nil {
			return err
		}
		h.println()
		if !same {
			index = store.NotFound
		}
	}
}

// pickEntry asks for a translation and lets the user choose among the
// entries holding it. It returns store.NotFound when nothing was chosen.
func (h *Handler) pickEntry() (int, error) {
	q, err := h.readTranslation("a translation in the entry")
	if err != nil {
		return store.NotFound, err
	}
	h.println()

	count := h.dictionary.Duplicates(q)
	switch count {
	case 0:
		h.warn("There's no entry containing the translation you provided.")
		h.tip(`Use the "Add Entry" action to add an entry containing the translation.`)
		return store.NotFound, nil
	case 1:
		index, _, err := h.dictionary.MatchAt(q, 1)
		return index, err
	}

	pos, selected, err := h.page(count, func(pos int) error {
		_, entry, err := h.dictionary.MatchAt(q, pos)
		if err != nil {
			return err
		}
		h.printEntry(entry)
		return nil
	}, pageOptions{selectLabel: "Add to This Entry", exit: true})
	if err != nil || !selected {
		return store.NotFound, err
	}

	index, _, err := h.dictionary.MatchAt(q, pos)
	return index, err
}

// handleDeleteEntry pages through the entries and deletes the chosen one
func (h *Handler) handleDeleteEntry() error {
	pos, selected, err := h.page(h.dictionary.Len(), h.showEntryAt, pageOptions{
		selectLabel: "Delete This Entry",
		exit:        true,
	})
	if err != nil || !selected {
		return err
	}

	if err := h.dictionary.DeleteEntry(pos - 1); err != nil {
		return err
	}
	h.success("Deleted the entry from the stored list!")
	return nil
}

// handleDeleteTranslations pages through the entries, then deletes
// translations from the chosen one until the user exits or none are left
func (h *Handler) handleDeleteTranslations() error {
	pos, selected, err := h.page(h.dictionary.Len(), h.showEntryAt, pageOptions{
		selectLabel: "Delete Translations From This Entry",
		exit:        true,
	})
	if err != nil || !selected {
		return err
	}

	index := pos - 1
	for {
		entry, err := h.dictionary.Entry(index)
		if err != nil {
			return err
		}
		h.printEntry(entry)
		h.println()
		for i, t := range entry.Translations {
			h.printf(" [%d] Delete the %s Translation\n", i+1, t.Language)
		}
		h.println()
		h.println(color.Red.Sprint(" [X] Exit"))
		h.println()

		choice, err := h.readChoice("> ")
		if err != nil {
			return err
		}
		h.println()

		if choice == "X" {
			return nil
		}
		id, ok := parseID(choice, entry.Len())
		if !ok {
			h.fail(errInvalidAction)
			continue
		}

		if index, err = h.dictionary.DeleteTranslation(index, id-1); err != nil {
			return err
		}
		if index == store.NotFound {
			h.success("Deleted the entry since its last translation was removed!")
			return nil
		}
		h.logger.Debug("Translation removed from entry", zap.Int("entry_index", index))
		h.success("Deleted the translation from the entry!")
		h.println()
	}
}

func (h *Handler) showEntryAt(pos int) error {
	entry, err := h.dictionary.Entry(pos - 1)
	if err != nil {
		return err
	}
	h.printEntry(entry)
	return nil
}
