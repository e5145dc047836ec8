// Package main is the entry point for the drawertidy viewer: it opens a
// document, tidies its property drawers and lets the user edit around the
// decorated regions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/drawertidy/internal/annotate"
	"github.com/dshills/drawertidy/internal/buffer"
	"github.com/dshills/drawertidy/internal/config"
	"github.com/dshills/drawertidy/internal/config/watcher"
	"github.com/dshills/drawertidy/internal/event"
	"github.com/dshills/drawertidy/internal/logging"
	"github.com/dshills/drawertidy/internal/mode"
	"github.com/dshills/drawertidy/internal/renderer"
	"github.com/dshills/drawertidy/internal/tidy"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "drawertidy.toml", "path to the configuration file")
	logPath := flag.String("log", "", "write logs to this file (default: discard)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("drawertidy", version)
		return 0
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: drawertidy [flags] <document>")
		flag.PrintDefaults()
		return 2
	}
	docPath := flag.Arg(0)

	text, err := os.ReadFile(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", docPath, err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(*logPath, cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	styles, err := cfg.StyleConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	surface := annotate.NewSurface()
	buf := buffer.New(buffer.WithContent(string(text)), buffer.WithGuard(surface.Blocks))
	session := tidy.NewSession(surface)
	bus := event.NewBus()
	ctrl := mode.NewController(buf, session, bus, logger, styles)

	// Live config reload: new styles apply on the next tidy pass.
	if w, err := watcher.New(*configPath, func() {
		reloaded, err := config.Load(*configPath)
		if err != nil {
			logger.Warn("config reload failed: %v", err)
			return
		}
		if s, err := reloaded.StyleConfig(); err == nil {
			ctrl.SetStyles(s)
			bus.Publish(event.Event{Topic: event.TopicConfigReloaded, Source: "config"})
		}
	}); err == nil {
		defer w.Close()
	} else {
		logger.Debug("config watch unavailable: %v", err)
	}

	term, err := renderer.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	ctrl.Enable()
	ui := &viewer{
		term:    term,
		buf:     buf,
		surface: surface,
		ctrl:    ctrl,
		bus:     bus,
		path:    docPath,
	}
	ui.loop()
	return 0
}

// newLogger builds the logger, returning a close func for the log file.
func newLogger(path string, level logging.Level) (*logging.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	var w io.Writer = f
	return logging.New(w, level), func() { f.Close() }, nil
}

// viewer is the interactive terminal loop.
type viewer struct {
	term    *renderer.Terminal
	buf     *buffer.Buffer
	surface *annotate.Surface
	ctrl    *mode.Controller
	bus     *event.Bus
	path    string

	cursor int
	status string
}

func (v *viewer) loop() {
	v.status = "t tidy | u untidy | s save | q quit"
	for {
		v.draw()

		ev := v.term.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return
		case tcell.KeyLeft:
			v.moveCursor(-1)
		case tcell.KeyRight:
			v.moveCursor(1)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			v.edit(v.buf.DeleteBackward, -1)
		case tcell.KeyDelete:
			v.edit(v.buf.DeleteForward, 0)
		case tcell.KeyRune:
			if v.handleRune(key.Rune()) {
				return
			}
		}
	}
}

// handleRune processes a typed rune. Returns true to quit.
func (v *viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 't':
		v.ctrl.Enable()
		v.status = "tidied"
	case 'u':
		v.ctrl.Disable()
		v.status = "untidied"
	case 's':
		v.save()
	default:
		if err := v.buf.Insert(v.cursor, string(r)); err == nil {
			v.cursor += len(string(r))
			v.status = ""
		}
	}
	return false
}

// edit applies a destructive edit at the cursor and reports refusals.
func (v *viewer) edit(op func(int) error, cursorDelta int) {
	err := op(v.cursor)
	switch {
	case errors.Is(err, buffer.ErrProtectedRegion):
		v.status = "protected region"
	case err != nil:
		v.status = err.Error()
	default:
		v.cursor = max(0, v.cursor+cursorDelta)
		v.status = ""
	}
}

func (v *viewer) moveCursor(delta int) {
	v.cursor = min(max(0, v.cursor+delta), v.buf.Len())
}

func (v *viewer) save() {
	if err := os.WriteFile(v.path, []byte(v.buf.Text()), 0o644); err != nil {
		v.status = "save failed: " + err.Error()
		return
	}
	v.bus.Publish(event.Event{Topic: event.TopicBufferSaved, Source: "viewer"})
	v.status = "saved"
}

func (v *viewer) draw() {
	text := v.buf.Text()
	anns := v.surface.All()
	lines := renderer.Compose(text, anns)
	line, col := renderer.Position(text, anns, v.cursor)
	v.term.Draw(lines, line, col, v.status)
}
