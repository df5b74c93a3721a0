package events

// Origin is a raw platform event origin, e.g. a widget callback slot.
// On installs handler and returns a function that removes it again.
type Origin[T any] interface {
	On(handler func(T)) (detach func())
}

// OriginFunc adapts a plain function to Origin.
type OriginFunc[T any] func(handler func(T)) (detach func())

func (f OriginFunc[T]) On(handler func(T)) func() { return f(handler) }

// Observe wraps origin as a Source. The origin handler is installed when
// the first subscriber arrives and removed when the last one leaves, so an
// unobserved origin costs nothing.
func Observe[T any](origin Origin[T]) *Source[T] {
	s := NewSource[T]()
	s.attach = func() func() {
		return origin.On(s.Emit)
	}
	return s
}

// Map returns a Source that emits fn(v) for every v emitted by src. The
// subscription to src lives as long as the returned Source has subscribers.
func Map[T, U any](src *Source[T], fn func(T) U) *Source[U] {
	out := NewSource[U]()
	out.attach = func() func() {
		sub := src.Subscribe(func(v T) { out.Emit(fn(v)) })
		return sub.Unsubscribe
	}
	return out
}

// Hub is a settable Origin: platform code calls Fire and every installed
// handler runs in install order.
type Hub[T any] struct {
	src *Source[T]
}

// NewHub creates an empty Hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{src: NewSource[T]()}
}

func (h *Hub[T]) On(handler func(T)) func() {
	return h.src.Subscribe(handler).Unsubscribe
}

// Fire delivers v to the installed handlers.
func (h *Hub[T]) Fire(v T) {
	h.src.Emit(v)
}

// Installed reports whether any handler is installed.
func (h *Hub[T]) Installed() bool {
	return h.src.Subscribers() > 0
}
