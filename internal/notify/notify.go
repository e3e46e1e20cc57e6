// Package notify delivers transient user-facing notifications, the
// terminal equivalent of the toast messages a browser UI would show.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier emits one-line transient notices to the user.
type Notifier interface {
	Info(message string)
	Success(message string)
	Error(message string)
}

// Writer is a Notifier that prints notices to a stream.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Notifier writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Info(message string) {
	fmt.Fprintf(w.out, "%s\n", message)
}

func (w *Writer) Success(message string) {
	fmt.Fprintf(w.out, "✓ %s\n", message)
}

func (w *Writer) Error(message string) {
	fmt.Fprintf(w.out, "✗ %s\n", message)
}

// Discard is a Notifier that drops all notices. Useful in tests.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Info(string)    {}
func (discard) Success(string) {}
func (discard) Error(string)   {}

// Recorder is a Notifier that captures notices for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Infos     []string
	Successes []string
	Errors    []string
}

func (r *Recorder) Info(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Infos = append(r.Infos, message)
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}
