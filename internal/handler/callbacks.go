package handler

import (
	"strconv"
	"strings"
	"unicode"

	"translator/internal/domain"
)

// cleanInput turns whitespace into spaces and removes all other
// non-printable characters
func cleanInput(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

func (h *Handler) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return cleanInput(line), nil
}

// readToken prompts until a non-blank line arrives and returns its first
// token cut to max characters
func (h *Handler) readToken(prompt string, max int) (string, error) {
	h.printf("%s", prompt)
	for {
		line, err := h.readLine()
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return domain.Truncate(fields[0], max), nil
		}
	}
}

func (h *Handler) readChoice(prompt string) (string, error) {
	token, err := h.readToken(prompt, domain.MaxTokenLength)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(token), nil
}

// confirm treats any answer starting with y as yes
func (h *Handler) confirm(question string) (bool, error) {
	answer, err := h.readToken(question+" "+hint("([y]es / [ANY] no)")+": ", domain.MaxTokenLength)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

func (h *Handler) readTranslation(what string) (domain.Translation, error) {
	language, err := h.readToken(
		"Input the language of "+what+" "+hint("(maximum of 20 characters)")+": ",
		domain.MaxTokenLength,
	)
	if err != nil {
		return domain.Translation{}, err
	}
	word, err := h.readWord(what)
	if err != nil {
		return domain.Translation{}, err
	}
	return domain.Translation{Language: language, Word: word}, nil
}

func (h *Handler) readWord(what string) (string, error) {
	return h.readToken("Input "+what+" "+hint("(maximum of 20 characters)")+": ", domain.MaxTokenLength)
}

func (h *Handler) readFileName(prompt string) (string, error) {
	return h.readToken(prompt+" "+hint("(maximum of 30 characters)")+": ", domain.MaxFileNameLength)
}

// parseID reads a 1-based menu id within [1, max]
func parseID(choice string, max int) (int, bool) {
	id, err := strconv.Atoi(choice)
	if err != nil || id < 1 || id > max {
		return 0, false
	}
	return id, true
}
