package report

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olehluchkiv/zooreport/internal/species"
)

// Title is the first line of every report.
const Title = "New Arriving Animals Report"

var ErrWriteReport = errors.New("writing report")

// Section is one species block of the report.
type Section struct {
	Species species.Species
	Records []species.Record
}

// Sections groups records by species. Sections follow the tally's
// first-seen order; species present in records but missing from the tally
// are appended in the order they first appear. Records keep arrival order.
func Sections(records []species.Record, tally *species.Tally) []Section {
	var order []species.Species
	if tally != nil {
		order = tally.Species()
	}
	index := make(map[species.Species]int, len(order))
	sections := make([]Section, 0, len(order))
	for _, s := range order {
		index[s] = len(sections)
		sections = append(sections, Section{Species: s})
	}

	for _, r := range records {
		i, ok := index[r.Species()]
		if !ok {
			i = len(sections)
			index[r.Species()] = i
			sections = append(sections, Section{Species: r.Species()})
		}
		sections[i].Records = append(sections[i].Records, r)
	}
	return sections
}

// Generate renders the report text. The count in each section header is the
// number of records listed under it.
func Generate(records []species.Record, tally *species.Tally) string {
	var b strings.Builder

	b.WriteString(Title + "\n")
	b.WriteString(strings.Repeat("=", len(Title)) + "\n")

	for _, sec := range Sections(records, tally) {
		fmt.Fprintf(&b, "%s (Total: %d)\n", sec.Species.Plural(), len(sec.Records))
		for _, r := range sec.Records {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}
	return b.String()
}

// WriteFile writes content to path, creating or truncating it.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	return nil
}
