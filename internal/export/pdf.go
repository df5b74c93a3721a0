package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"sync"

	"LiveBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

var ErrFinished = errors.New("pdf already written")

// PDF is a SurfacePainter that mirrors every segment onto a single PDF page
// the size of the board, one point per surface pixel.
type PDF struct {
	mu       sync.Mutex
	doc      *gofpdf.Fpdf
	segments int
	done     bool
}

func NewPDF(width, height int) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")
	return &PDF{doc: doc}
}

func (p *PDF) StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return ErrFinished
	}
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(float64(width))
	p.doc.Line(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	if err := p.doc.Error(); err != nil {
		return fmt.Errorf("pdf segment: %w", err)
	}
	p.segments++
	return nil
}

// Segments returns how many segments were drawn.
func (p *PDF) Segments() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.segments
}

// WriteTo finishes the document and writes it to w. The PDF accepts no
// further segments afterwards.
func (p *PDF) WriteTo(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return ErrFinished
	}
	p.done = true
	return p.doc.Output(w)
}

// Save finishes the document and writes it to path.
func (p *PDF) Save(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return ErrFinished
	}
	p.done = true
	if err := p.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	log.Printf("[EXPORT] wrote %d segments to %s", p.segments, path)
	return nil
}
