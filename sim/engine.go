package sim

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rustyeddy/forecast/journal"
)

var (
	// ErrInvalidConfig is returned by New when the engine parameters are
	// unusable. No engine exists after a config failure.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrInvalidInput is returned by RunSimulations before any run executes.
	// Prior results are left untouched.
	ErrInvalidInput = errors.New("invalid simulation input")
)

// Engine runs forward-looking Monte Carlo simulations of a single investable
// asset. Each period's return is sampled from a Gaussian distribution and the
// running balance is deflated by the inflation rate, so results are in real
// (inflation-adjusted) terms.
//
// The zero value is not usable; construct with New.
type Engine struct {
	mu sync.Mutex

	returnMultiplier    float64
	standardDeviation   float64
	inflationMultiplier float64

	source Source

	sink     journal.Journal
	ownsSink bool // true when the engine opened the sink itself (SetCSVOutput)

	results []float64 // sorted ascending, replaced wholesale per batch
}

// New constructs an engine. All three parameters are percentages: a mean of
// 9.4 means an expected 9.4% return per period. A negative standard deviation
// fails with ErrInvalidConfig.
func New(meanPct, stdDevPct, inflationPct float64) (*Engine, error) {
	if stdDevPct < 0 {
		return nil, fmt.Errorf("%w: standard deviation cannot be negative (got %v)", ErrInvalidConfig, stdDevPct)
	}

	return &Engine{
		returnMultiplier:    1.0 + meanPct/100,
		standardDeviation:   stdDevPct / 100,
		inflationMultiplier: 1.0 + inflationPct/100,
		source:              NewSource(),
		sink:                journal.Discard{},
	}, nil
}

// ReturnMultiplier returns the expected per-period growth factor (1+mean/100).
func (e *Engine) ReturnMultiplier() float64 { return e.returnMultiplier }

// StandardDeviation returns the per-period return deviation as a fraction.
func (e *Engine) StandardDeviation() float64 { return e.standardDeviation }

// InflationMultiplier returns the per-period deflator (1+inflation/100).
func (e *Engine) InflationMultiplier() float64 { return e.inflationMultiplier }

// SetSource replaces the standard-normal source. Production wiring keeps the
// default PRNG; tests inject a fixed source for deterministic replay.
func (e *Engine) SetSource(s Source) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s == nil {
		s = NewSource()
	}
	e.source = s
}

// SetJournal installs a trajectory sink. A nil journal installs the discard
// sink. The engine does not take ownership: the caller closes what it opened.
// Swapping sinks takes effect on the next RunSimulations call.
func (e *Engine) SetJournal(j journal.Journal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if j == nil {
		j = journal.Discard{}
	}
	return e.installLocked(j, false)
}

// SetOutputStream directs trajectory lines to w. A nil writer installs the
// discard sink.
func (e *Engine) SetOutputStream(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if w == nil {
		return e.installLocked(journal.Discard{}, false)
	}
	return e.installLocked(journal.NewStream(w), false)
}

// SetCSVOutput opens path for writing and directs trajectory lines to it.
// The engine owns the file and closes it on the next sink swap or on Close.
// An empty path installs the discard sink.
func (e *Engine) SetCSVOutput(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path == "" {
		return e.installLocked(journal.Discard{}, false)
	}

	c, err := journal.NewCSV(path)
	if err != nil {
		return fmt.Errorf("open csv output: %w", err)
	}
	return e.installLocked(c, true)
}

// Close flushes and closes an engine-owned sink and resets to discard.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.installLocked(journal.Discard{}, false)
}

// installLocked swaps in a new sink, closing the previous one if the engine
// opened it. Callers must hold e.mu.
func (e *Engine) installLocked(j journal.Journal, owned bool) error {
	var err error
	if e.ownsSink {
		err = e.sink.Close()
	}
	e.sink = j
	e.ownsSink = owned
	if err != nil {
		return fmt.Errorf("close previous sink: %w", err)
	}
	return nil
}

// RunSimulations executes numSims independent runs of the given period count
// from the starting value. Each run's full trajectory is delivered to the
// sink, in generation order, before its final balance is kept; after all runs
// complete the sorted final balances replace any prior result set.
//
// Validation happens before any run executes or any line is written. A sink
// write failure aborts the batch and leaves the prior result set in place.
func (e *Engine) RunSimulations(numSims, periods int, start float64) error {
	if start <= 0 {
		return fmt.Errorf("%w: starting value must be positive (got %v)", ErrInvalidInput, start)
	}
	if numSims < 1 {
		return fmt.Errorf("%w: number of runs must be positive (got %d)", ErrInvalidInput, numSims)
	}
	if periods < 1 {
		return fmt.Errorf("%w: number of periods must be positive (got %d)", ErrInvalidInput, periods)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	finals := make([]float64, 0, numSims)
	run := make([]float64, periods)

	for i := 0; i < numSims; i++ {
		e.runOnce(run, start)
		if err := e.sink.RecordRun(formatRun(run)); err != nil {
			return fmt.Errorf("record run %d: %w", i+1, err)
		}
		finals = append(finals, run[periods-1])
	}

	sort.Float64s(finals)
	e.results = finals
	return nil
}

// runOnce fills run with one trajectory of per-period real balances.
func (e *Engine) runOnce(run []float64, start float64) {
	balance := start
	for i := range run {
		sample := e.source.NormFloat64()*e.standardDeviation + e.returnMultiplier
		balance = balance * sample / e.inflationMultiplier
		run[i] = balance
	}
}

// Results returns a copy of the sorted final balances from the last batch.
func (e *Engine) Results() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]float64, len(e.results))
	copy(out, e.results)
	return out
}

// formatRun renders a trajectory as a comma-joined line with each balance at
// exactly 2 decimal places, newline-terminated. Consumers parse this format;
// it must not change.
func formatRun(run []float64) string {
	var b strings.Builder
	b.Grow(len(run) * 10)

	buf := make([]byte, 0, 24)
	for i, v := range run {
		if i > 0 {
			b.WriteByte(',')
		}
		buf = strconv.AppendFloat(buf[:0], v, 'f', 2, 64)
		b.Write(buf)
	}
	b.WriteByte('\n')
	return b.String()
}
