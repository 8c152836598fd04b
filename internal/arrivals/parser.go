package arrivals

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/olehluchkiv/zooreport/internal/names"
	"github.com/olehluchkiv/zooreport/internal/species"
)

// maxLineSize bounds a single line of the arrivals log.
const maxLineSize = 1 << 20

var (
	ErrReadArrivals = errors.New("reading arrivals file")
	ErrInvalidAge   = errors.New("invalid age")
	ErrNoNames      = errors.New("no names for species")
)

// arrivalPattern matches "<digits> year old ... <species> ...". The greedy
// gap means the last species word on the line wins.
var arrivalPattern = regexp.MustCompile(
	`(?i)(\d+) year old.*\b(` + strings.Join(species.Keys(), "|") + `)\b`,
)

// strayPattern catches "<digits> year old [male|female|...] <word>" lines
// naming an animal outside the taxonomy so they can be reported instead of
// silently dropped. The word must be followed by an arrival cue: punctuation,
// end of line, or "arrived", "arrives", "from", "born".
var strayPattern = regexp.MustCompile(
	`(?i)(\d+) year old\s+(?:(?:male|female|baby|young|adult)\s+)*(\pL+)` +
		`(?:\s*[,.;]|\s*$|\s+(?:arrived|arrives|from|born)\b)`,
)

// notAnimal holds words strayPattern can capture that never name an animal.
var notAnimal = map[string]bool{
	"male": true, "female": true, "baby": true, "young": true, "adult": true,
	"arrived": true, "arrives": true, "from": true, "born": true,
}

// Skip records an arrival line that matched but produced no record.
type Skip struct {
	Line    int
	Species string
	Err     error
}

// Result is everything one pass over an arrivals log produced.
type Result struct {
	Records []species.Record
	Tally   *species.Tally
	Lines   int
	Skips   []Skip
}

func newResult() *Result {
	return &Result{Tally: species.NewTally()}
}

// Parser turns arrival lines into records, naming each animal from a pool.
type Parser struct {
	pool    *names.Pool
	pick    Picker
	logger  *slog.Logger
	console io.Writer
}

// NewParser builds a Parser. A nil pick falls back to NewRandomPicker(0),
// a nil logger to slog.Default and a nil console discards the trace.
func NewParser(pool *names.Pool, pick Picker, logger *slog.Logger, console io.Writer) *Parser {
	if pool == nil {
		pool = names.NewPool()
	}
	if pick == nil {
		pick = NewRandomPicker(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if console == nil {
		console = io.Discard
	}
	return &Parser{pool: pool, pick: pick, logger: logger, console: console}
}

// Parse consumes r line by line. On a read error it stops and returns the
// partial result together with an error wrapping ErrReadArrivals.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	res := newResult()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		res.Lines++
		p.parseLine(res, res.Lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrReadArrivals, err)
	}

	p.logger.Info("arrivals parsed",
		"lines", res.Lines, "records", len(res.Records), "skipped", len(res.Skips))
	return res, nil
}

// ParseFile parses the arrivals log at path. Open and read failures are
// reported, never returned: the caller always gets a result, possibly empty.
func (p *Parser) ParseFile(path string) *Result {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(p.console, "Error reading animals file: %v\n", err)
		p.logger.Error("failed to open arrivals file", "path", path, "error", err)
		return newResult()
	}
	defer f.Close()

	res, err := p.Parse(f)
	if err != nil {
		fmt.Fprintf(p.console, "Error reading animals file: %v\n", err)
		p.logger.Error("failed to read arrivals file", "path", path, "error", err,
			"lines", res.Lines, "records", len(res.Records))
	}
	return res
}

func (p *Parser) parseLine(res *Result, n int, line string) {
	fmt.Fprintf(p.console, "%d) %s\n", n, line)

	m := arrivalPattern.FindStringSubmatch(line)
	if m == nil {
		if stray := strayPattern.FindStringSubmatch(line); stray != nil && !notAnimal[strings.ToLower(stray[2])] {
			key := strings.ToLower(stray[2])
			p.skip(res, n, key, fmt.Errorf("%w: %s", species.ErrUnknownSpecies, key),
				"Skipping animal due to unknown species: "+key)
			return
		}
		p.logger.Debug("no arrival on line", "line", n)
		return
	}
	key := strings.ToLower(m[2])

	age, err := strconv.Atoi(m[1])
	if err != nil {
		p.skip(res, n, key, fmt.Errorf("%w: %s", ErrInvalidAge, m[1]),
			"Skipping animal due to invalid age: "+m[1])
		return
	}

	sp, ok := species.Parse(key)
	if !ok {
		p.skip(res, n, key, fmt.Errorf("%w: %s", species.ErrUnknownSpecies, key),
			"Skipping animal due to unknown species: "+key)
		return
	}

	pool := p.pool.Names(key)
	if len(pool) == 0 {
		p.skip(res, n, key, fmt.Errorf("%w: %s", ErrNoNames, key),
			"Skipping animal due to missing name for species: "+key)
		return
	}
	name := pool[p.pick(len(pool))]

	fmt.Fprintf(p.console, "Assigning Name: %s\nSpecies: %s\nAge: %d\n", name, key, age)

	rec, err := species.NewRecord(sp, name, age)
	if err != nil {
		p.skip(res, n, key, err, "Skipping animal: "+err.Error())
		return
	}
	res.Records = append(res.Records, rec)
	res.Tally.Add(sp)

	fmt.Fprintf(p.console, "Sound: %s\n\n", rec.Sound())
	p.logger.Debug("animal recorded", "line", n, "species", key, "name", name, "age", age)
}

func (p *Parser) skip(res *Result, n int, key string, err error, msg string) {
	res.Skips = append(res.Skips, Skip{Line: n, Species: key, Err: err})
	fmt.Fprintln(p.console, msg)
	p.logger.Warn("arrival skipped", "line", n, "species", key, "reason", err)
}
