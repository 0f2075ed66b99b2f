package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

func TestPainterPlainProfile(t *testing.T) {
	// A renderer writing to a buffer has no color support
	p := NewPainter(lipgloss.NewRenderer(&bytes.Buffer{}))

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'o', core.ColorBrightYellow)
	s.SetColored(3, 0, 'o', core.ColorBrightYellow)
	s.SetColored(0, 1, '#', core.ColorRed)

	if got, expected := p.Paint(s), s.String(); got != expected {
		t.Errorf("Paint() = %q, expected %q", got, expected)
	}
}

func TestPainterUnknownColorIsPlain(t *testing.T) {
	p := NewPainter(nil)

	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.ColorDefault)
	s.SetColored(1, 0, 'y', core.Color(200))

	if got := p.Paint(s); got != "xy " {
		t.Errorf("Paint() = %q, expected %q", got, "xy ")
	}
}
