package state

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"LiveBoard/internal/events"
)

// Sampler is a current-value cell, e.g. a config stream.
type Sampler[T any] interface {
	Latest() (T, error)
}

// PairHandler receives the segments of the active stroke.
type PairHandler interface {
	OnPositionPair(PositionPair) error
}

// State of a Session.
type State int

const (
	Idle State = iota
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "idle"
}

// stroke is the lifetime of one press. Its subscriptions are the only
// thing that keeps move occurrences flowing into the session.
type stroke struct {
	config   StrokeConfig
	prev     Position
	hasPrev  bool
	subs     []events.Subscription
	segments int
	skipped  int
	closed   bool
}

// Session turns pointer occurrences into the PositionPairs of at most one
// open stroke. All methods must be called from the goroutine that emits the
// pointer occurrences.
type Session struct {
	width   Sampler[float32]
	color   Sampler[color.NRGBA]
	handler PairHandler
	logger  *log.Logger

	// Debug logs every frozen config.
	Debug bool
	// OnStrokeEnd is called once per closed stroke.
	OnStrokeEnd func(StrokeSummary)
	// OnError receives painter failures. The failing stroke is already
	// closed when it runs; nothing is retried.
	OnError func(error)

	origin   *PointerOrigin
	pressSub events.Subscription
	active   *stroke
	err      error
}

// NewSession creates an idle session. A nil logger logs to stderr.
func NewSession(width Sampler[float32], c Sampler[color.NRGBA], handler PairHandler, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Session{width: width, color: c, handler: handler, logger: logger}
}

// Attach starts listening for presses on p. Moves, releases and leaves are
// only subscribed to while a stroke is open.
func (s *Session) Attach(p *PointerOrigin) {
	s.Detach()
	s.origin = p
	s.pressSub = p.Press.Subscribe(s.press)
}

// Detach stops listening and closes the open stroke, if any.
func (s *Session) Detach() {
	if s.pressSub != nil {
		s.pressSub.Unsubscribe()
		s.pressSub = nil
	}
	if s.active != nil {
		s.close(s.active, ClosedByDetach)
	}
	s.origin = nil
}

// State reports whether a stroke is open.
func (s *Session) State() State {
	if s.active != nil {
		return Capturing
	}
	return Idle
}

// Current returns the config of the open stroke.
func (s *Session) Current() (StrokeConfig, bool) {
	if s.active == nil {
		return StrokeConfig{}, false
	}
	return s.active.config, true
}

// Err returns the first painter failure seen by the session.
func (s *Session) Err() error {
	return s.err
}

func (s *Session) press(PointerEvent) {
	if s.active != nil {
		s.close(s.active, ClosedByPress)
	}

	cfg, err := s.sample()
	if err != nil {
		s.logger.Printf("[SESSION] press ignored: %v", err)
		return
	}
	if s.Debug {
		s.logger.Printf("[SESSION] stroke %d started: width=%g color=#%02x%02x%02x",
			cfg.Seq, cfg.Width, cfg.Color.R, cfg.Color.G, cfg.Color.B)
	}

	st := &stroke{config: cfg}
	s.active = st
	st.subs = []events.Subscription{
		s.origin.Move.Subscribe(func(e PointerEvent) { s.move(st, e) }),
		s.origin.Release.Subscribe(func(PointerEvent) { s.close(st, ClosedByRelease) }),
		s.origin.Leave.Subscribe(func(PointerEvent) { s.close(st, ClosedByLeave) }),
	}
}

// sample reads both config cells and freezes them.
func (s *Session) sample() (StrokeConfig, error) {
	w, err := s.width.Latest()
	if err != nil {
		return StrokeConfig{}, fmt.Errorf("width: %w", err)
	}
	c, err := s.color.Latest()
	if err != nil {
		return StrokeConfig{}, fmt.Errorf("color: %w", err)
	}
	return StrokeConfig{ID: newStrokeID(), Seq: nextSeq(), Width: w, Color: c}, nil
}

func (s *Session) move(st *stroke, e PointerEvent) {
	if st.closed {
		return
	}
	pos, err := e.Position()
	if err != nil {
		st.skipped++
		s.logger.Printf("[SESSION] stroke %d: skipping move: %v", st.config.Seq, err)
		return
	}
	if !st.hasPrev {
		st.prev, st.hasPrev = pos, true
		return
	}

	pair := PositionPair{From: st.prev, To: pos, Config: st.config}
	st.prev = pos
	if err := s.handler.OnPositionPair(pair); err != nil {
		s.close(st, ClosedByError)
		s.fail(fmt.Errorf("stroke %d: %w", st.config.Seq, err))
		return
	}
	st.segments++
}

// close ends st exactly once.
func (s *Session) close(st *stroke, reason CloseReason) {
	if st.closed {
		return
	}
	st.closed = true
	for _, sub := range st.subs {
		sub.Unsubscribe()
	}
	st.subs = nil
	if s.active == st {
		s.active = nil
	}
	if s.OnStrokeEnd != nil {
		s.OnStrokeEnd(StrokeSummary{
			Config:   st.config,
			Segments: st.segments,
			Skipped:  st.skipped,
			Reason:   reason,
		})
	}
}

func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
	if s.OnError != nil {
		s.OnError(err)
		return
	}
	s.logger.Printf("[SESSION] paint failed: %v", err)
}
