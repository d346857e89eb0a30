// Package events delivers named change notifications to one or more sinks.
package events

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/mj1618/organizer-cli/internal/output"
)

// Event is one emitted notification.
type Event struct {
	ID      string    `yaml:"id"      json:"id"`
	Name    string    `yaml:"event"   json:"event"`
	Time    time.Time `yaml:"time"    json:"time"`
	Payload any       `yaml:"payload" json:"payload"`
}

// NewEvent stamps a payload with a fresh ID and the current time.
func NewEvent(name string, payload any) Event {
	return Event{
		ID:      uuid.NewString(),
		Name:    name,
		Time:    time.Now(),
		Payload: payload,
	}
}

// Emitter is a sink for named events.
type Emitter interface {
	Emit(ctx context.Context, ev Event) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(ctx context.Context, ev Event) error

func (f EmitterFunc) Emit(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(context.Context, Event) error { return nil })

// Multi delivers each event to every sink and combines their errors.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, ev Event) error {
	var result *multierror.Error
	for _, e := range m {
		if err := e.Emit(ctx, ev); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Broadcast is a Multi whose sinks can be added after it has been handed
// out.
type Broadcast struct {
	mu    sync.RWMutex
	sinks Multi
}

// Add registers another sink.
func (b *Broadcast) Add(e Emitter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, e)
}

func (b *Broadcast) Emit(ctx context.Context, ev Event) error {
	b.mu.RLock()
	sinks := b.sinks
	b.mu.RUnlock()
	return sinks.Emit(ctx, ev)
}

// Writer prints events to w in the current output format, one document per
// event.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Writer sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Emit(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if output.OutputFormat == output.FormatYAML {
		if _, err := io.WriteString(s.w, "---\n"); err != nil {
			return err
		}
	}
	return output.Fprint(s.w, ev)
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Named returns the recorded events with the given name.
func (r *Recorder) Named(name string) []Event {
	var out []Event
	for _, ev := range r.Events() {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}
