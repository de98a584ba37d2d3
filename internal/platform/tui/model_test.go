package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-kit/internal/core"
	"github.com/vovakirdan/arcade-kit/internal/lifecycle"
)

// fakeGame records how the platform drives it.
type fakeGame struct {
	steps     int
	resets    int
	lastInput core.InputFrame
	state     core.GameState
	endAfter  int // Step count at which the game reports game over (0 = never)
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{}
}

func (f *fakeGame) Step(in core.InputFrame, elapsedMs float64) core.StepResult {
	f.steps++
	f.lastInput = in.Clone()
	f.state.Score = f.steps
	if f.endAfter > 0 && f.steps >= f.endAfter {
		f.state.GameOver = true
	}
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) {}

func (f *fakeGame) State() core.GameState { return f.state }

func testModel(g *fakeGame, events func(lifecycle.Event)) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewGameModel(g, nil, cfg, events)
	m.Init()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m GameModel) GameModel {
	newModel, _ := m.Update(TickMsg(time.Now()))
	return newModel.(GameModel)
}

func press(m GameModel, s string) GameModel {
	newModel, _ := m.Update(keyMsg(s))
	return newModel.(GameModel)
}

func TestIdleDoesNotStepGame(t *testing.T) {
	g := &fakeGame{}
	m := testModel(g, nil)

	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	if g.steps != 0 {
		t.Errorf("idle session should not step the game, got %d steps", g.steps)
	}
}

func TestSpaceStartsAndTicksStep(t *testing.T) {
	g := &fakeGame{}
	m := testModel(g, nil)

	m = press(m, " ")
	if !m.machine.Playing() {
		t.Fatal("space on the idle screen should start the run")
	}

	m = tick(m)
	m = tick(m)
	if g.steps != 2 {
		t.Errorf("playing session should step once per tick, got %d", g.steps)
	}
}

func TestPauseFreezesStepping(t *testing.T) {
	g := &fakeGame{}
	m := testModel(g, nil)
	m = press(m, " ")
	m = tick(m)

	m = press(m, "p")
	if m.machine.State() != lifecycle.Paused {
		t.Fatal("p should pause a running game")
	}

	before := g.steps
	m = tick(m)
	m = tick(m)
	if g.steps != before {
		t.Errorf("paused session should not step the game: %d -> %d", before, g.steps)
	}

	m = press(m, "p")
	m = tick(m)
	if g.steps != before+1 {
		t.Errorf("resume should step again, got %d want %d", g.steps, before+1)
	}
}

func TestInputFlagsLastOneFrame(t *testing.T) {
	g := &fakeGame{}
	m := testModel(g, nil)
	m = press(m, " ")

	m = press(m, "a")
	m = tick(m)
	if !g.lastInput.Has(core.ActionLeft) {
		t.Error("action set before a tick should be visible to that tick")
	}

	m = tick(m)
	if g.lastInput.Has(core.ActionLeft) {
		t.Error("actions must be cleared after one frame")
	}
}

func TestGameOverEndsMachineOnce(t *testing.T) {
	g := &fakeGame{endAfter: 3}
	var events []lifecycle.EventKind
	m := testModel(g, func(e lifecycle.Event) {
		events = append(events, e.Kind)
	})

	m = press(m, " ")
	for i := 0; i < 6; i++ {
		m = tick(m)
	}

	if m.machine.State() != lifecycle.GameOver {
		t.Fatalf("game over should move the machine to GameOver, got %v", m.machine.State())
	}
	if g.steps != 3 {
		t.Errorf("finished game should not be stepped again, got %d steps", g.steps)
	}

	overs := 0
	for _, k := range events {
		if k == lifecycle.EventGameOver {
			overs++
		}
	}
	if overs != 1 {
		t.Errorf("exactly one game_over event expected, got %d", overs)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	m := testModel(g, nil)

	m = press(m, " ")
	m = tick(m)
	m = tick(m)
	if m.machine.State() != lifecycle.GameOver {
		t.Fatal("expected game over")
	}

	g.endAfter = 0
	m = press(m, "r")
	if !m.machine.Playing() {
		t.Fatal("r should start a fresh run from game over")
	}
	if g.resets < 2 {
		t.Errorf("restart should reset the game, got %d resets", g.resets)
	}
}

func TestBackToMenuFromGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := testModel(g, nil)

	m = press(m, " ")
	m = tick(m)
	m = press(m, "b")
	if !m.BackToMenu() {
		t.Error("b on the game over screen should request the menu")
	}
}

func TestLifecycleEventSequence(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	var events []lifecycle.EventKind
	m := testModel(g, func(e lifecycle.Event) {
		events = append(events, e.Kind)
	})

	m = press(m, " ")
	m = tick(m)
	m = press(m, "p")
	m = press(m, "p")
	m = tick(m)

	want := []lifecycle.EventKind{
		lifecycle.EventReady,
		lifecycle.EventStart,
		lifecycle.EventScoreUpdate,
		lifecycle.EventPause,
		lifecycle.EventResume,
		lifecycle.EventScoreUpdate,
		lifecycle.EventGameOver,
	}
	if len(events) != len(want) {
		t.Fatalf("event sequence: got %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: got %v, want %v", i, events[i], want[i])
		}
	}
}

func TestKeyMapperSpaceIsJumpAndFire(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg(" "), &frame)

	if !frame.Has(core.ActionJump) || !frame.Has(core.ActionFire) {
		t.Error("space should map to both Jump and Fire")
	}
}

func TestKeyMapperMovement(t *testing.T) {
	km := NewKeyMapper()

	cases := map[string]core.Action{
		"a": core.ActionLeft,
		"d": core.ActionRight,
		"w": core.ActionUp,
		"s": core.ActionDown,
		"r": core.ActionRestart,
	}
	for k, want := range cases {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(keyMsg(k), &frame)
		if !frame.Has(want) {
			t.Errorf("key %q should map to %v", k, want)
		}
	}
}
