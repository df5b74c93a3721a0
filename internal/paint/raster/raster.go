// Package raster paints strokes into an offscreen image with the gg
// software renderer, for PNG snapshots of the board.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"LiveBoard/internal/state"

	"github.com/gogpu/gg"
)

var ErrClosed = errors.New("raster surface closed")

// Surface is a SurfacePainter backed by a gg.Context.
type Surface struct {
	mu     sync.Mutex
	dc     *gg.Context
	closed bool
	count  int
}

// New creates a white surface of width x height logical pixels. scale is
// the device pixel ratio: the backing image is scale times larger and all
// coordinates are scaled to match.
func New(width, height int, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(float64(width)*scale), int(float64(height)*scale))
	dc.ClearWithColor(gg.White)
	dc.Scale(scale, scale)
	dc.SetLineCap(gg.LineCapRound)
	return &Surface{dc: dc}
}

func (s *Surface) StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(float64(width))
	s.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("raster stroke: %w", err)
	}
	s.count++
	return nil
}

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dc.Image()
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	log.Printf("[RASTER] saved %d segments to %s", s.count, path)
	return nil
}

// Close releases the context. Later segments fail with ErrClosed.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
