// Package textfile stores entries as plain text files, one
// "<language>: <word>" line per translation and a blank line after each entry.
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"translator/internal/domain"
)

// Encode writes entries in store order
func Encode(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		for _, t := range e.Translations {
			if _, err := fmt.Fprintf(bw, "%s: %s\n", t.Language, t.Word); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads entries separated by blank lines.
// Lines that do not hold a language and a word are skipped, whatever their length.
func Decode(r io.Reader) ([]domain.Entry, error) {
	var (
		entries []domain.Entry
		current domain.Entry
	)

	flush := func() {
		if current.Len() > 0 {
			entries = append(entries, current)
		}
		current = domain.Entry{}
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if strings.TrimSpace(line) == "" {
				flush()
			} else if t, ok := parseLine(line); ok {
				current.Translations = append(current.Translations, t)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	flush()

	return entries, nil
}

func parseLine(line string) (domain.Translation, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Translation{}, false
	}

	language := strings.TrimSuffix(fields[0], ":")
	if language == "" {
		return domain.Translation{}, false
	}

	return domain.Translation{
		Language: domain.Truncate(language, domain.MaxTokenLength),
		Word:     domain.Truncate(fields[1], domain.MaxTokenLength),
	}, true
}
