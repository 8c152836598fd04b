package species

import "fmt"

// Record is one arrived animal. The zero value is not a valid record; use
// NewRecord.
type Record struct {
	name    string
	age     int
	species Species
}

// NewRecord builds a record for the given species. It fails for species
// outside the taxonomy, an empty name or a negative age.
func NewRecord(s Species, name string, age int) (Record, error) {
	if !s.Valid() {
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownSpecies, int(s))
	}
	if name == "" {
		return Record{}, fmt.Errorf("%w for %s", ErrEmptyName, s)
	}
	if age < 0 {
		return Record{}, fmt.Errorf("%w: %d", ErrNegativeAge, age)
	}
	return Record{name: name, age: age, species: s}, nil
}

func (r Record) Name() string { return r.name }
func (r Record) Age() int { return r.age }
func (r Record) Species() Species { return r.species }
func (r Record) Sound() string { return r.species.Sound() }

// String renders the record the way report listings show it: "Simba (5 years old)".
func (r Record) String() string {
	return fmt.Sprintf("%s (%d years old)", r.name, r.age)
}
