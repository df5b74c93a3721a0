package events

import "sync"

// Subscription is the handle returned by Subscribe. Unsubscribe may be
// called any number of times.
type Subscription interface {
	Unsubscribe()
}

type subscriber[T any] struct {
	fn     func(T)
	active bool
}

// Source is a push-based sequence of occurrences. Emit delivers
// synchronously to every subscriber in subscription order. Nothing is
// buffered or replayed: a late subscriber only sees later occurrences.
type Source[T any] struct {
	mu     sync.Mutex
	subs   []*subscriber[T]
	closed bool

	// attach/detach are set by Observe to bind a platform origin lazily.
	attach func() (detach func())
	detach func()
}

// NewSource creates an open Source with no subscribers.
func NewSource[T any]() *Source[T] {
	return &Source[T]{}
}

type subscription[T any] struct {
	src  *Source[T]
	sub  *subscriber[T]
	once sync.Once
}

func (s *subscription[T]) Unsubscribe() {
	s.once.Do(func() { s.src.remove(s.sub) })
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

// Subscribe registers fn for every occurrence emitted from now on.
// Subscribing to a closed Source returns an inert subscription.
func (s *Source[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return noopSubscription{}
	}
	sub := &subscriber[T]{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	first := len(s.subs) == 1 && s.attach != nil && s.detach == nil
	s.mu.Unlock()

	if first {
		detach := s.attach()
		s.mu.Lock()
		s.detach = detach
		s.mu.Unlock()
	}
	return &subscription[T]{src: s, sub: sub}
}

func (s *Source[T]) remove(sub *subscriber[T]) {
	s.mu.Lock()
	sub.active = false
	for i, cur := range s.subs {
		if cur == sub {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			break
		}
	}
	var detach func()
	if len(s.subs) == 0 && s.detach != nil {
		detach = s.detach
		s.detach = nil
	}
	s.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// Emit hands v to the subscribers registered at the time of the call.
// A subscriber removed while Emit is running is skipped if not yet reached.
func (s *Source[T]) Emit(v T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	snapshot := make([]*subscriber[T], len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		s.mu.Lock()
		active := sub.active
		s.mu.Unlock()
		if active {
			sub.fn(v)
		}
	}
}

// Close tears the Source down. Existing subscribers are dropped and the
// platform origin, if any, is detached.
func (s *Source[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.active = false
	}
	s.subs = nil
	detach := s.detach
	s.detach = nil
	s.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// Subscribers reports how many subscribers are currently registered.
func (s *Source[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
