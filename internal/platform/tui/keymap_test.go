package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/delhi-dash/internal/core"
	"github.com/vovakirdan/delhi-dash/internal/registry"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", runeKey('w'), core.ActionJump, false},
		{"down slides", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide, false},
		{"s slides", runeKey('s'), core.ActionSlide, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

// stubGame records what the model asks of it.
type stubGame struct {
	steps     int
	resets    int
	abandoned bool
	last      core.InputFrame
	state     core.GameState
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Abandon() { g.abandoned = true }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

var _ registry.Game = (*stubGame)(nil)

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey('s'))
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if g.steps != 1 || !g.last.Has(core.ActionSlide) {
		t.Errorf("Step received %+v, expected a slide", g.last)
	}

	// Input is cleared after each tick
	next.Update(TickMsg{})
	if g.last.Has(core.ActionSlide) {
		t.Error("slide input repeated on the next tick")
	}
}

func TestModelBackAbandonsRun(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	if !model.BackToMenu() || !g.abandoned {
		t.Error("back did not abandon the run")
	}

	steps := g.steps
	model.Update(TickMsg{})
	if g.steps != steps {
		t.Error("game stepped after leaving for the menu")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey('r'))
	next, _ = next.Update(TickMsg{})
	if g.resets != 0 {
		t.Fatal("restart accepted during a run")
	}

	g.state.GameOver = true
	g.state.SummaryShown = true
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(runeKey('r'))
	next, _ = next.Update(TickMsg{})
	if g.resets != 1 {
		t.Errorf("resets = %d after restart, expected 1", g.resets)
	}
}

func TestModelHeldJumpDoesNotSkipSummary(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	// The run has ended but the summary delay is still running
	g.state.GameOver = true
	next, _ := m.Update(TickMsg{})
	for i := 0; i < 5; i++ {
		next, _ = next.Update(space)
		next, _ = next.Update(TickMsg{})
	}
	if g.resets != 0 {
		t.Fatalf("resets = %d before the summary was shown, expected 0", g.resets)
	}

	g.state.SummaryShown = true
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(space)
	next.Update(TickMsg{})
	if g.resets != 1 {
		t.Errorf("resets = %d after space on the summary, expected 1", g.resets)
	}
}
