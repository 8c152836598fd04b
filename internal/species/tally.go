package species

// Tally counts records per species and remembers the order in which each
// species was first counted.
type Tally struct {
	order  []Species
	counts map[Species]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[Species]int)}
}

// Add increments the count for s and returns the new count.
func (t *Tally) Add(s Species) int {
	if _, seen := t.counts[s]; !seen {
		t.order = append(t.order, s)
	}
	t.counts[s]++
	return t.counts[s]
}

// Count returns the number of records counted for s.
func (t *Tally) Count(s Species) int {
	return t.counts[s]
}

// Species returns the counted species in first-seen order.
func (t *Tally) Species() []Species {
	out := make([]Species, len(t.order))
	copy(out, t.order)
	return out
}

// Total returns the number of records counted across all species.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}
