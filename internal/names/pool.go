package names

import "strings"

// Pool holds candidate names per species, keyed by the lowercase species
// word. Names keep file order and may repeat.
type Pool struct {
	names map[string][]string
	order []string
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{names: make(map[string][]string)}
}

// open starts (or restarts) the section for species.
func (p *Pool) open(species string) {
	if _, ok := p.names[species]; !ok {
		p.order = append(p.order, species)
	}
	p.names[species] = []string{}
}

func (p *Pool) add(species string, names ...string) {
	p.names[species] = append(p.names[species], names...)
}

// Names returns a copy of the candidates for species, or nil when the pool
// has no section for it.
func (p *Pool) Names(species string) []string {
	list, ok := p.names[strings.ToLower(species)]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Has reports whether a section for species was seen, even an empty one.
func (p *Pool) Has(species string) bool {
	_, ok := p.names[strings.ToLower(species)]
	return ok
}

// Species returns the section keys in the order they first appeared.
func (p *Pool) Species() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of names across all sections.
func (p *Pool) Len() int {
	n := 0
	for _, list := range p.names {
		n += len(list)
	}
	return n
}
