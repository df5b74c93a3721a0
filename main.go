package main

import (
	"flag"
	"fmt"
	"log"

	"LiveBoard/internal/config"
	"LiveBoard/internal/export"
	"LiveBoard/internal/paint"
	"LiveBoard/internal/paint/raster"
	"LiveBoard/internal/state"
	"LiveBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	run(settings)
}

func run(settings config.Settings) {
	log.Println("Starting board")

	myApp := ui.NewApp()
	board := ui.NewBoardWidget(float32(settings.CanvasWidth), float32(settings.CanvasHeight))
	width := ui.NewWidthControl(settings.Width)
	col := ui.NewColorControl(settings.Color)
	window := ui.NewWindow(myApp, board, width, col)

	painters := paint.Fanout{board}

	var snapshot *raster.Surface
	if settings.SnapshotPNG != "" {
		snapshot = raster.New(settings.CanvasWidth, settings.CanvasHeight, settings.Scale)
		defer snapshot.Close()
		painters = append(painters, snapshot)
	}
	var pdf *export.PDF
	if settings.ExportPDF != "" {
		pdf = export.NewPDF(settings.CanvasWidth, settings.CanvasHeight)
		painters = append(painters, pdf)
	}

	widthStream := config.NewStream("width", width, config.ParseWidth)
	colorStream := config.NewStream("color", col, config.ParseColor)
	defer widthStream.Stop()
	defer colorStream.Stop()

	session := state.NewSession(widthStream, colorStream, paint.NewDriver(painters), log.Default())
	session.Debug = settings.Debug
	session.OnStrokeEnd = func(sum state.StrokeSummary) {
		window.SetStatus(fmt.Sprintf("Stroke %d: %d segments (%s)", sum.Config.Seq, sum.Segments, sum.Reason))
	}
	// a failed paint call is never retried; the board stops here
	session.OnError = func(err error) {
		log.Fatalf("[BOARD] %v", err)
	}

	pointer := board.Pointer()
	session.Attach(pointer)

	window.Run()

	session.Detach()
	pointer.Close()

	if snapshot != nil {
		if err := snapshot.SavePNG(settings.SnapshotPNG); err != nil {
			log.Printf("Snapshot failed: %v", err)
		}
	}
	if pdf != nil {
		if err := pdf.Save(settings.ExportPDF); err != nil {
			log.Printf("PDF export failed: %v", err)
		}
	}
}
