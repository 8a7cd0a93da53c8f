// Package cardtext reads and writes the line-delimited card exchange
// format: one card per line, six comma-separated fields
// (name,hp,attack,defense,element,rarity), UTF-8 text.
package cardtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tcwang/elemental-cards/internal/card"
)

const fieldCount = 6

// LineError describes one rejected input line. Malformed lines never
// abort an import; they are skipped and reported.
type LineError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	Imported int         `json:"imported"`
	Updated  int         `json:"updated"`
	Skipped  []LineError `json:"skipped"`
}

// ParseLine decodes one record. It fails when the line does not split
// into exactly six fields, the name is empty, or a numeric stat does
// not parse.
func ParseLine(line string) (card.Card, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return card.Card{}, fmt.Errorf("expected %d comma-separated fields, got %d", fieldCount, len(fields))
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return card.Card{}, fmt.Errorf("card name is empty")
	}
	hp, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return card.Card{}, fmt.Errorf("invalid hp %q", fields[1])
	}
	attack, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return card.Card{}, fmt.Errorf("invalid attack %q", fields[2])
	}
	defense, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return card.Card{}, fmt.Errorf("invalid defense %q", fields[3])
	}
	return card.New(name, hp, attack, defense, fields[4], strings.TrimSpace(fields[5])), nil
}

// FormatLine encodes one card as a record line (no trailing newline).
func FormatLine(c card.Card) string {
	return strings.Join([]string{
		c.Name,
		strconv.Itoa(c.HP),
		strconv.Itoa(c.Attack),
		strconv.Itoa(c.Defense),
		string(c.Element),
		c.Rarity,
	}, ",")
}

// Import reads records from r and hands each well-formed card to
// upsert, which reports whether the card was newly created. Blank
// lines are ignored; malformed lines are skipped and listed in the
// report. Importing the same file twice therefore updates cards in
// place without growing the collection.
func Import(r io.Reader, upsert func(card.Card) (created bool, err error)) (ImportReport, error) {
	var report ImportReport
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := ParseLine(line)
		if err != nil {
			report.Skipped = append(report.Skipped, LineError{Line: lineNo, Reason: err.Error()})
			continue
		}
		created, err := upsert(c)
		if err != nil {
			return report, fmt.Errorf("importing line %d: %w", lineNo, err)
		}
		if created {
			report.Imported++
		} else {
			report.Updated++
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("reading import data: %w", err)
	}
	return report, nil
}

// Export writes all cards to w in collection order, one record per
// line.
func Export(w io.Writer, cards []card.Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if _, err := bw.WriteString(FormatLine(c) + "\n"); err != nil {
			return fmt.Errorf("writing export data: %w", err)
		}
	}
	return bw.Flush()
}
