// Package picker implements the interactive full-screen front-end: a
// prompt line plus a ranked candidate list that re-runs the matcher on
// every keystroke.
package picker

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/ffind/internal/matcher"
	"github.com/kk-code-lab/ffind/internal/textutil"
)

const prompt = "> "

// Picker drives one interactive selection session.
type Picker struct {
	screen   tcell.Screen
	m        *matcher.Matcher
	opts     matcher.Options
	query    []rune
	results  []string
	selected int
	err      error
}

// New creates a Picker and initializes the terminal screen.
func New(m *matcher.Matcher, opts matcher.Options) (*Picker, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewWithScreen(screen, m, opts), nil
}

// NewWithScreen creates a Picker on an already initialized screen
// (tests use tcell's simulation screen).
func NewWithScreen(screen tcell.Screen, m *matcher.Matcher, opts matcher.Options) *Picker {
	return &Picker{screen: screen, m: m, opts: opts}
}

// Run owns the screen until the user accepts or cancels. It returns the
// accepted path and true, or "" and false on cancel.
func (p *Picker) Run() (string, bool, error) {
	defer p.screen.Fini()

	p.refresh()
	if p.err != nil {
		return "", false, p.err
	}
	for {
		p.draw()
		p.screen.Show()

		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			done, accepted := p.handleKey(ev)
			if p.err != nil {
				return "", false, p.err
			}
			if done {
				if accepted && p.selected < len(p.results) {
					return p.results[p.selected], true, nil
				}
				return "", false, nil
			}
		}
	}
}

// handleKey applies one key event. It reports whether the session is
// over and whether the current selection was accepted.
func (p *Picker) handleKey(ev *tcell.EventKey) (done bool, accepted bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, false
	case tcell.KeyEnter:
		return true, len(p.results) > 0
	case tcell.KeyUp, tcell.KeyCtrlP:
		p.moveSelection(-1)
	case tcell.KeyDown, tcell.KeyCtrlN:
		p.moveSelection(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.refresh()
		}
	case tcell.KeyCtrlU:
		if len(p.query) > 0 {
			p.query = p.query[:0]
			p.refresh()
		}
	case tcell.KeyRune:
		p.query = append(p.query, ev.Rune())
		p.refresh()
	}
	return false, false
}

// refresh re-ranks the full candidate set for the current query. Each
// keystroke is a fresh complete pass over the scanner's paths.
func (p *Picker) refresh() {
	results, err := p.m.SortedMatches(string(p.query), p.opts)
	if err != nil {
		p.err = err
		return
	}
	p.results = results
	if p.selected >= len(p.results) {
		p.selected = 0
	}
}

func (p *Picker) moveSelection(delta int) {
	if len(p.results) == 0 {
		p.selected = 0
		return
	}
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected > len(p.results)-1 {
		p.selected = len(p.results) - 1
	}
}

func (p *Picker) draw() {
	p.screen.Clear()
	width, height := p.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	promptStyle := tcell.StyleDefault.Bold(true)
	drawText(p.screen, 0, 0, width, prompt+string(p.query), promptStyle)

	rows := height - 1
	first := windowStart(p.selected, len(p.results), rows)
	for row := 0; row < rows; row++ {
		idx := first + row
		if idx >= len(p.results) {
			break
		}
		style := tcell.StyleDefault
		if idx == p.selected {
			style = style.Reverse(true)
		}
		line := textutil.SanitizePath(p.results[idx])
		drawText(p.screen, 0, row+1, width, line, style)
	}
}

// windowStart picks the first visible result row so the selection stays
// on screen.
func windowStart(selected, total, rows int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	first := selected - rows/2
	if first < 0 {
		first = 0
	}
	if first > total-rows {
		first = total - rows
	}
	return first
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range textutil.TruncateDisplay(text, maxWidth) {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
