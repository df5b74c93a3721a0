package ui

import (
	"image/color"
	"log"
	"sync"

	"LiveBoard/internal/events"
	"LiveBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It fires raw pointer occurrences and
// paints the segments it is handed as canvas lines.
type BoardWidget struct {
	widget.BaseWidget

	press, move, release, leave *events.Hub[state.PointerEvent]

	mu         sync.Mutex
	lines      *fyne.Container
	background *canvas.Rectangle
	size       fyne.Size
	dragging   bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(width, height float32) *BoardWidget {
	b := &BoardWidget{
		press:      events.NewHub[state.PointerEvent](),
		move:       events.NewHub[state.PointerEvent](),
		release:    events.NewHub[state.PointerEvent](),
		leave:      events.NewHub[state.PointerEvent](),
		lines:      container.NewWithoutLayout(),
		background: canvas.NewRectangle(color.White),
		size:       fyne.NewSize(width, height),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Pointer observes the board's four pointer origins.
func (b *BoardWidget) Pointer() *state.PointerOrigin {
	return &state.PointerOrigin{
		Press:   events.Observe[state.PointerEvent](b.press),
		Move:    events.Observe[state.PointerEvent](b.move),
		Release: events.Observe[state.PointerEvent](b.release),
		Leave:   events.Observe[state.PointerEvent](b.leave),
	}
}

func pointerAt(p fyne.Position) state.PointerEvent {
	return state.At(p.X, p.Y)
}

// StrokeSegment adds one line to the board.
func (b *BoardWidget) StrokeSegment(from, to state.Position, width float32, c color.NRGBA) error {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(from.X, from.Y)
	line.Position2 = fyne.NewPos(to.X, to.Y)

	b.mu.Lock()
	b.lines.Add(line)
	b.mu.Unlock()
	b.lines.Refresh()
	return nil
}

// Segments returns how many lines are on the board.
func (b *BoardWidget) Segments() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines.Objects)
}

// Clear wipes every painted line.
func (b *BoardWidget) Clear() {
	b.mu.Lock()
	b.lines.RemoveAll()
	b.mu.Unlock()
	log.Println("[UI] board cleared")
	b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.press.Fire(pointerAt(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.release.Fire(pointerAt(e.Position))
	}
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	// while dragging the same motion also arrives through Dragged
	if !b.dragging {
		b.move.Fire(pointerAt(e.Position))
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.dragging = true
	b.move.Fire(pointerAt(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.dragging = false
	b.release.Fire(state.PointerEvent{})
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.leave.Fire(state.PointerEvent{})
}

func (b *BoardWidget) MinSize() fyne.Size {
	return b.size
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(b.background, b.lines))
}
