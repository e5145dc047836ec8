package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// gutterWidth is the width of the marker gutter column.
const gutterWidth = 2

// Terminal displays composed lines using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal display.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the terminal screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// PollEvent blocks until the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Draw renders the composed lines with a gutter column, a cursor and a
// status line at the bottom.
func (t *Terminal) Draw(lines []Line, cursorLine, cursorCol int, status string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	width, height := t.screen.Size()
	textRows := height - 1

	for y := 0; y < textRows && y < len(lines); y++ {
		line := lines[y]
		if line.Marker != "" {
			t.screen.SetContent(0, y, '▍', nil, markerStyle())
		}
		x := gutterWidth
		for _, cell := range line.Cells {
			if x >= width {
				break
			}
			t.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Style))
			x += max(cell.Width, 1)
		}
	}

	if cursorLine >= 0 && cursorLine < textRows {
		t.screen.ShowCursor(gutterWidth+cursorCol, cursorLine)
	} else {
		t.screen.HideCursor()
	}

	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, height-1, ' ', nil, statusStyle)
	}
	for x, r := range status {
		if x >= width {
			break
		}
		t.screen.SetContent(x, height-1, r, nil, statusStyle)
	}

	t.screen.Show()
}

// styleFor maps a cell style to a tcell style.
func styleFor(s Style) tcell.Style {
	switch s {
	case StyleGlyph:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Dim(true)
	case StyleMarker:
		return markerStyle()
	default:
		return tcell.StyleDefault
	}
}

// markerStyle is the gutter marker style.
func markerStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorYellow)
}
