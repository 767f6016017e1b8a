package testutil

import (
	"bytes"
	"io"

	"github.com/AntonioJCosta/trove/internal/core/ports"
)

// MockOutput is a buffer-backed implementation of ports.Output that records
// how it was used.
type MockOutput struct {
	Buffer         bytes.Buffer
	Color          bool
	PagerRequested bool
	Closed         bool

	// StdoutCalls counts how many times the writer was handed out.
	StdoutCalls int
	// WriteErr makes every write through Stdout fail with this error.
	WriteErr error
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func (m *MockOutput) RequestPager() {
	m.PagerRequested = true
}

func (m *MockOutput) Stdout() io.Writer {
	m.StdoutCalls++
	if m.WriteErr != nil {
		return failingWriter{err: m.WriteErr}
	}
	return &m.Buffer
}

func (m *MockOutput) ColorEnabled() bool {
	return m.Color
}

func (m *MockOutput) Close() error {
	m.Closed = true
	return nil
}

// MockOutputFactory hands out a single MockOutput and records the options.
type MockOutputFactory struct {
	Output  *MockOutput
	Options []ports.OutputOptions
	Err     error
}

func (m *MockOutputFactory) NewOutput(opts ports.OutputOptions) (ports.Output, error) {
	m.Options = append(m.Options, opts)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Output == nil {
		m.Output = &MockOutput{}
	}
	return m.Output, nil
}
