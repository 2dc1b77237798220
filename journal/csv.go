// journal/csv.go
package journal

import (
	"bufio"
	"io"
	"os"
)

// Stream delivers trajectory lines to any writer. It does not buffer, so a
// write error surfaces on the run that caused it.
type Stream struct {
	w io.Writer
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

func (s *Stream) RecordRun(line string) error {
	_, err := io.WriteString(s.w, line)
	return err
}

func (s *Stream) Close() error { return nil }

// CSV writes trajectory lines to a file, buffered. Lines are already
// comma-separated values, so the sink only has to deliver bytes.
type CSV struct {
	w *bufio.Writer
	f *os.File
}

// NewCSV creates (or truncates) path and returns a file-backed sink.
func NewCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSV{w: bufio.NewWriter(f), f: f}, nil
}

func (c *CSV) RecordRun(line string) error {
	_, err := c.w.WriteString(line)
	return err
}

func (c *CSV) Close() error {
	if err := c.w.Flush(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}
