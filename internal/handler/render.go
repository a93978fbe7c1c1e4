package handler

import (
	"fmt"
	"strings"

	"translator/internal/domain"
)

const tableRule = "|--------------------------------------------------|"

// printEntry renders the translations of e as a table
func (h *Handler) printEntry(e domain.Entry) {
	h.println(tableRule)
	h.println("| ID |       Language       |     Translation      |")
	h.println(tableRule)
	for i, t := range e.Translations {
		h.printf("| %-2d | %-20s | %-20s |\n", i+1, t.Language, t.Word)
	}
	h.println(tableRule)
}

func (h *Handler) printSummary() {
	summary := h.stats.Summary()
	languages := h.stats.Languages(summary)

	parts := make([]string, 0, len(languages))
	for _, l := range languages {
		parts = append(parts, fmt.Sprintf("%s (%d)", l, summary.Languages[l]))
	}

	h.printf("%d entries, %d translations\n", summary.Entries, summary.Translations)
	if len(parts) > 0 {
		h.printf("Languages: %s\n", strings.Join(parts, ", "))
	}
	h.println()
}
