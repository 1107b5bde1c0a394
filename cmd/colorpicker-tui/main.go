// Command colorpicker-tui is an interactive terminal color picker.
//
// Drag with the left mouse button over the gradient to pick a color.
// c/m/y/k select a CMYK slider, + and - nudge it by one percent, q or Esc
// quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/color-picker-mcp/internal/config"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

func main() {
	var logPath string
	flag.StringVar(&logPath, "log", "", "Write logs to this file (the terminal is busy)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		level, _ := cfg.Level()
		picker.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	canvas := surface.NewCanvas()
	defer canvas.Close()

	v := &view{
		screen: screen,
		canvas: canvas,
		picker: picker.NewController(
			picker.WithExtent(cfg.Extent),
			picker.WithMarkerRadius(cfg.MarkerRadius),
		),
		channel: picker.ChannelKey,
	}
	if err := v.picker.InitializeSurface(canvas); err != nil {
		return err
	}
	v.layout()
	v.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *tcell.EventResize:
			v.layout()
			screen.Sync()
		case nil:
			// screen finalized
			return nil
		}
		v.draw()
	}
}
