// journal/journal.go
package journal

// Journal receives one formatted trajectory line per completed simulation
// run, in generation order. Implementations must not reorder or drop lines;
// a failed write is returned to the caller and aborts the batch in progress.
type Journal interface {
	RecordRun(line string) error
	Close() error
}

// Discard drops every trajectory line. It is the engine's default sink.
type Discard struct{}

func (Discard) RecordRun(string) error { return nil }

func (Discard) Close() error { return nil }
