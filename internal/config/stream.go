package config

import (
	"log"
	"sync"

	"LiveBoard/internal/events"
)

// ValueSource is an input control: a readable current value plus a
// notification carrying the new raw value on every change.
type ValueSource interface {
	Value() string
	Changed() *events.Source[string]
}

// Value is one element of a Stream. Err is set when the raw control value
// could not be parsed; V is then the zero value.
type Value[T any] struct {
	V   T
	Err error
}

// Stream turns a ValueSource into a sequence that always starts with the
// control's present value. It also keeps the latest parsed value in a cell
// that any number of readers can sample.
type Stream[T any] struct {
	src   ValueSource
	parse func(string) (T, error)
	name  string

	mu     sync.RWMutex
	latest Value[T]
	sub    events.Subscription
}

// NewStream starts tracking src. The latest cell is filled synchronously
// from src.Value, so Latest never reports "no value yet".
func NewStream[T any](name string, src ValueSource, parse func(string) (T, error)) *Stream[T] {
	s := &Stream[T]{src: src, parse: parse, name: name}
	s.latest = s.convert(src.Value())
	s.sub = src.Changed().Subscribe(func(raw string) {
		v := s.convert(raw)
		s.mu.Lock()
		s.latest = v
		s.mu.Unlock()
	})
	return s
}

func (s *Stream[T]) convert(raw string) Value[T] {
	v, err := s.parse(raw)
	if err != nil {
		log.Printf("[CONFIG] %s: ignoring value %q: %v", s.name, raw, err)
		return Value[T]{Err: err}
	}
	return Value[T]{V: v}
}

// Subscribe calls fn with the control's present value before returning,
// then again on every change, in change order.
func (s *Stream[T]) Subscribe(fn func(Value[T])) events.Subscription {
	sub := s.src.Changed().Subscribe(func(raw string) { fn(s.convert(raw)) })
	fn(s.convert(s.src.Value()))
	return sub
}

// Latest returns the most recent value seen on the control.
func (s *Stream[T]) Latest() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest.V, s.latest.Err
}

// Stop detaches the latest-value cell from the control.
func (s *Stream[T]) Stop() {
	s.sub.Unsubscribe()
}

// StaticSource is a ValueSource whose value only changes through Set. It
// backs controls that are not on screen and the tests.
type StaticSource struct {
	mu      sync.Mutex
	value   string
	changed *events.Source[string]
}

func NewStaticSource(initial string) *StaticSource {
	return &StaticSource{value: initial, changed: events.NewSource[string]()}
}

func (s *StaticSource) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *StaticSource) Changed() *events.Source[string] { return s.changed }

// Set stores v and fires the change notification.
func (s *StaticSource) Set(v string) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	s.changed.Emit(v)
}
