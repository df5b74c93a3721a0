package paint

import (
	"fmt"
	"image/color"
	"sync"

	"LiveBoard/internal/state"
)

// SurfacePainter draws one straight segment on a surface.
type SurfacePainter interface {
	StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error
}

// Driver forwards every PositionPair to the painter as exactly one
// segment, in the order received.
type Driver struct {
	painter SurfacePainter
}

func NewDriver(p SurfacePainter) *Driver {
	return &Driver{painter: p}
}

// OnPositionPair paints pair. A painter error is returned as is, wrapped
// with the stroke id; the segment is not retried.
func (d *Driver) OnPositionPair(pair state.PositionPair) error {
	cfg := pair.Config
	if err := d.painter.StrokeSegment(pair.From, pair.To, cfg.Width, cfg.Color); err != nil {
		return fmt.Errorf("paint segment of stroke %s: %w", cfg.ID, err)
	}
	return nil
}

// Fanout paints on several surfaces in order and stops at the first error.
type Fanout []SurfacePainter

func (f Fanout) StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error {
	for _, p := range f {
		if err := p.StrokeSegment(from, to, width, c); err != nil {
			return err
		}
	}
	return nil
}

// Segment is one recorded StrokeSegment call.
type Segment struct {
	From, To state.Position
	Width    float32
	Color    color.NRGBA
}

// Recorder is a SurfacePainter that only remembers what it was asked to draw.
type Recorder struct {
	mu       sync.Mutex
	segments []Segment
}

func (r *Recorder) StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = append(r.segments, Segment{From: from, To: to, Width: width, Color: c})
	return nil
}

// Segments returns a copy of everything recorded so far.
func (r *Recorder) Segments() []Segment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Len returns the number of recorded segments.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.segments)
}
