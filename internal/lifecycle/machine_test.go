package lifecycle

import (
	"testing"
)

// recorder collects emitted events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) notify(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func kindsEqual(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEmitsReadyOnce(t *testing.T) {
	rec := &recorder{}
	m := New(50, rec.notify)

	if m.State() != Idle {
		t.Errorf("new machine should be Idle, got %v", m.State())
	}
	if m.HighScore() != 50 {
		t.Errorf("HighScore: got %d, want 50", m.HighScore())
	}
	if !kindsEqual(rec.kinds(), []EventKind{EventReady}) {
		t.Errorf("events after New: %v, want [ready]", rec.kinds())
	}
}

func TestFullSessionEventSequence(t *testing.T) {
	rec := &recorder{}
	m := New(0, rec.notify)

	m.Start()
	m.SetScore(10)
	m.Pause()
	m.Resume()
	m.End(Result{Score: 25, Level: 2})

	want := []EventKind{EventReady, EventStart, EventScoreUpdate, EventPause, EventResume, EventGameOver}
	if !kindsEqual(rec.kinds(), want) {
		t.Errorf("event sequence: %v, want %v", rec.kinds(), want)
	}

	last := rec.events[len(rec.events)-1]
	if last.Result == nil {
		t.Fatal("game_over event should carry a result")
	}
	if last.Result.Score != 25 || last.Result.Level != 2 {
		t.Errorf("result: %+v", last.Result)
	}
	if last.Result.HighScore != 25 {
		t.Errorf("result high score should be raised to 25, got %d", last.Result.HighScore)
	}
}

func TestInvalidTransitionsAreNoops(t *testing.T) {
	rec := &recorder{}
	m := New(0, rec.notify)

	m.Pause()  // not playing
	m.Resume() // not paused
	m.End(Result{Score: 99})
	m.Reset() // not game over

	if m.State() != Idle {
		t.Errorf("state after invalid transitions: %v, want Idle", m.State())
	}
	if !kindsEqual(rec.kinds(), []EventKind{EventReady}) {
		t.Errorf("invalid transitions should emit nothing, got %v", rec.kinds())
	}

	m.Start()
	m.Start() // already playing
	if got := rec.kinds(); len(got) != 2 {
		t.Errorf("double Start should emit one start, got %v", got)
	}
}

func TestPauseFreezesWithoutLosingScore(t *testing.T) {
	m := New(0, nil)
	m.Start()
	m.SetScore(7)
	m.Pause()

	if m.Playing() {
		t.Error("Playing should be false while paused")
	}
	if m.Score() != 7 {
		t.Errorf("pause should keep the score, got %d", m.Score())
	}

	m.SetScore(8) // ignored while paused
	if m.Score() != 7 {
		t.Errorf("SetScore while paused should be ignored, got %d", m.Score())
	}

	m.Resume()
	if !m.Playing() {
		t.Error("Playing should be true after resume")
	}
}

func TestSetScoreEmitsOnlyOnChange(t *testing.T) {
	rec := &recorder{}
	m := New(0, rec.notify)
	m.Start()

	m.SetScore(5)
	m.SetScore(5)
	m.SetScore(6)

	updates := 0
	for _, e := range rec.events {
		if e.Kind == EventScoreUpdate {
			updates++
		}
	}
	if updates != 2 {
		t.Errorf("score updates: got %d, want 2", updates)
	}
}

func TestEndRaisesHighScoreOnlyWhenBeaten(t *testing.T) {
	m := New(100, nil)
	m.Start()
	m.End(Result{Score: 40})

	if m.HighScore() != 100 {
		t.Errorf("losing run should keep the high score, got %d", m.HighScore())
	}

	m.Start()
	m.End(Result{Score: 150})
	if m.HighScore() != 150 {
		t.Errorf("winning run should raise the high score, got %d", m.HighScore())
	}
}

func TestRestartFromGameOver(t *testing.T) {
	m := New(0, nil)
	m.Start()
	m.End(Result{Score: 12})

	// Play-again path: straight back to Playing with a fresh score
	m.Start()
	if m.State() != Playing || m.Score() != 0 {
		t.Errorf("restart: state %v score %d, want Playing 0", m.State(), m.Score())
	}

	m.End(Result{Score: 3})

	// Menu path: back to Idle
	m.Reset()
	if m.State() != Idle {
		t.Errorf("Reset from GameOver: got %v, want Idle", m.State())
	}
}

func TestNilNotifyIsSafe(t *testing.T) {
	m := New(0, nil)
	m.Start()
	m.SetScore(1)
	m.Pause()
	m.Resume()
	m.End(Result{Score: 1})
	m.Reset()

	if m.State() != Idle {
		t.Errorf("state: got %v, want Idle", m.State())
	}
}
