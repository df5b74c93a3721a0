package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Window bundles the widgets of the main window.
type Window struct {
	App    fyne.App
	Win    fyne.Window
	Board  *BoardWidget
	Width  *WidthControl
	Color  *ColorControl
	status *widget.Label
}

// NewApp starts the Fyne application. It must run before any widget is built.
func NewApp() fyne.App {
	return app.New()
}

// NewWindow builds the board window. Nothing is shown until Run.
func NewWindow(myApp fyne.App, board *BoardWidget, width *WidthControl, col *ColorControl) *Window {
	myWindow := myApp.NewWindow("Live Board")

	w := &Window{
		App:    myApp,
		Win:    myWindow,
		Board:  board,
		Width:  width,
		Color:  col,
		status: widget.NewLabel("Ready"),
	}

	toolbar := NewToolbar(board, width, col)
	content := container.NewBorder(toolbar, w.status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.Resize(board.MinSize().Add(fyne.NewSize(0, 90)))
	return w
}

// SetStatus updates the status line from any goroutine.
func (w *Window) SetStatus(text string) {
	fyne.Do(func() {
		w.status.SetText(text)
	})
}

// Run shows the window and blocks until it is closed.
func (w *Window) Run() {
	w.Win.ShowAndRun()
}
