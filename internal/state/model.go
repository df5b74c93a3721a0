package state

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"LiveBoard/internal/events"
)

// Position is a surface-local point.
type Position struct{ X, Y float32 }

// PointerEvent is the payload of a pointer occurrence. Pos is nil when the
// platform delivered no coordinates.
type PointerEvent struct {
	Pos *Position
}

// At builds a PointerEvent for (x, y).
func At(x, y float32) PointerEvent {
	return PointerEvent{Pos: &Position{X: x, Y: y}}
}

var ErrMalformedOccurrence = errors.New("malformed pointer occurrence")

// Position returns the event's coordinates, or ErrMalformedOccurrence if
// they are missing or not finite.
func (e PointerEvent) Position() (Position, error) {
	if e.Pos == nil {
		return Position{}, fmt.Errorf("%w: no coordinates", ErrMalformedOccurrence)
	}
	for _, v := range []float32{e.Pos.X, e.Pos.Y} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Position{}, fmt.Errorf("%w: (%v, %v)", ErrMalformedOccurrence, e.Pos.X, e.Pos.Y)
		}
	}
	return *e.Pos, nil
}

// PointerOrigin groups the four pointer occurrence streams of a surface.
type PointerOrigin struct {
	Press   *events.Source[PointerEvent]
	Move    *events.Source[PointerEvent]
	Release *events.Source[PointerEvent]
	Leave   *events.Source[PointerEvent]
}

// NewPointerOrigin creates four unbound sources.
func NewPointerOrigin() *PointerOrigin {
	return &PointerOrigin{
		Press:   events.NewSource[PointerEvent](),
		Move:    events.NewSource[PointerEvent](),
		Release: events.NewSource[PointerEvent](),
		Leave:   events.NewSource[PointerEvent](),
	}
}

// Close tears all four sources down.
func (p *PointerOrigin) Close() {
	p.Press.Close()
	p.Move.Close()
	p.Release.Close()
	p.Leave.Close()
}

// StrokeConfig is the width and color frozen when a stroke starts.
type StrokeConfig struct {
	ID    string
	Seq   uint64
	Width float32
	Color color.NRGBA
}

// PositionPair is one segment of a stroke. From is always the To of the
// previous pair of the same stroke.
type PositionPair struct {
	From   Position
	To     Position
	Config StrokeConfig
}

// CloseReason says why a stroke ended.
type CloseReason string

const (
	ClosedByRelease CloseReason = "release"
	ClosedByLeave   CloseReason = "leave"
	ClosedByPress   CloseReason = "press"
	ClosedByError   CloseReason = "error"
	ClosedByDetach  CloseReason = "detach"
)

// StrokeSummary describes a finished stroke.
type StrokeSummary struct {
	Config   StrokeConfig
	Segments int
	Skipped  int
	Reason   CloseReason
}
