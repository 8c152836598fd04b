package species

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Species identifies one of the animals the zoo accepts. The set is closed.
type Species int

const (
	Unknown Species = iota
	Hyena
	Lion
	Tiger
	Bear
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrEmptyName      = errors.New("empty name")
	ErrNegativeAge    = errors.New("negative age")
)

type traits struct {
	key   string
	label string
	sound string
}

// table is indexed by Species; Unknown has no traits.
var table = [...]traits{
	Hyena: {key: "hyena", sound: "Hyena's laugh!"},
	Lion:  {key: "lion", sound: "Lion's roar!"},
	Tiger: {key: "tiger", sound: "Tiger's growl!"},
	Bear:  {key: "bear", sound: "Bear's grunt!"},
}

func init() {
	title := cases.Title(language.English)
	for i := range table {
		table[i].label = title.String(table[i].key)
	}
}

// All returns every known species in table order.
func All() []Species {
	return []Species{Hyena, Lion, Tiger, Bear}
}

// Keys returns the lowercase keys of every known species, in table order.
func Keys() []string {
	all := All()
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.Key()
	}
	return keys
}

// Parse maps a species word to its Species. Matching ignores case and
// surrounding whitespace.
func Parse(s string) (Species, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sp := range All() {
		if table[sp].key == s {
			return sp, true
		}
	}
	return Unknown, false
}

// Valid reports whether s is one of the known species.
func (s Species) Valid() bool {
	return s > Unknown && int(s) < len(table)
}

// Key is the lowercase name used for name-pool lookups ("lion").
func (s Species) Key() string {
	if !s.Valid() {
		return ""
	}
	return table[s].key
}

// Label is the display name ("Lion").
func (s Species) Label() string {
	if !s.Valid() {
		return ""
	}
	return table[s].label
}

// Plural is the report section name ("Lions").
func (s Species) Plural() string {
	if !s.Valid() {
		return ""
	}
	return table[s].label + "s"
}

// Sound is the species' sound descriptor ("Lion's roar!").
func (s Species) Sound() string {
	if !s.Valid() {
		return ""
	}
	return table[s].sound
}

func (s Species) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return table[s].key
}
