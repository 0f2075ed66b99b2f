package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

// palette holds the ANSI 256 codes of every colored cell the game draws.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorWhite:        "7",
	core.ColorGray:         "245",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
}

// Painter turns a Screen into styled terminal output. Each SSH client gets
// its own renderer so colors follow that client's terminal profile.
type Painter struct {
	styles map[core.Color]lipgloss.Style
	run    []rune
}

// NewPainter builds the color styles for r. A nil renderer uses the
// process terminal.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{styles: make(map[core.Color]lipgloss.Style, len(palette))}
	for c, code := range palette {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Paint renders the screen row by row, styling runs of equal color
// together to keep escape sequences short.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			p.run = p.run[:0]
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				p.run = append(p.run, cell.Rune)
			}

			style, ok := p.styles[color]
			if !ok {
				sb.WriteString(string(p.run))
				continue
			}
			sb.WriteString(style.Render(string(p.run)))
		}
	}
	return sb.String()
}
