package ui

import (
	"image/color"
	"strconv"

	"LiveBoard/internal/config"
	"LiveBoard/internal/events"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Width control ---

// WidthControl is a slider exposed as a config.ValueSource.
type WidthControl struct {
	Slider  *widget.Slider
	changed *events.Source[string]
}

var _ config.ValueSource = (*WidthControl)(nil)

func formatWidth(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func NewWidthControl(initial float32) *WidthControl {
	s := widget.NewSlider(1, config.MaxWidth)
	s.Step = 0.5
	s.SetValue(float64(initial))
	origin := events.OriginFunc[string](func(h func(string)) func() {
		s.OnChanged = func(v float64) { h(formatWidth(v)) }
		return func() { s.OnChanged = nil }
	})
	return &WidthControl{Slider: s, changed: events.Observe[string](origin)}
}

func (w *WidthControl) Value() string { return formatWidth(w.Slider.Value) }

func (w *WidthControl) Changed() *events.Source[string] { return w.changed }

// --- Color control ---

// ColorControl is a text entry holding a CSS color, exposed as a
// config.ValueSource. Typing fires a change per keystroke; partial input is
// simply an invalid value until it parses.
type ColorControl struct {
	Entry   *widget.Entry
	changed *events.Source[string]
}

var _ config.ValueSource = (*ColorControl)(nil)

func NewColorControl(initial string) *ColorControl {
	e := widget.NewEntry()
	e.SetText(initial)
	origin := events.OriginFunc[string](func(h func(string)) func() {
		e.OnChanged = h
		return func() { e.OnChanged = nil }
	})
	return &ColorControl{Entry: e, changed: events.Observe[string](origin)}
}

func (c *ColorControl) Value() string { return c.Entry.Text }

func (c *ColorControl) Changed() *events.Source[string] { return c.changed }

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.NRGBA{
	{A: 0xff},                            // Black
	{R: 0xff, A: 0xff},                   // Red
	{G: 0x80, A: 0xff},                   // Green
	{B: 0xff, A: 0xff},                   // Blue
	{R: 0xff, G: 0xd7, A: 0xff},          // Gold
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White (eraser)
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, width *WidthControl, col *ColorControl) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
	)

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, func(c color.NRGBA) {
			col.Entry.SetText(config.FormatColor(c))
		}))
	}

	sizeLabel := widget.NewLabel(width.Value())
	width.Changed().Subscribe(sizeLabel.SetText)

	colorBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), col.Entry)
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), width.Slider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		sizeLabel,
		layout.NewSpacer(),
	)
}
