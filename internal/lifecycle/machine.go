// Package lifecycle implements the session state machine that gates
// per-frame simulation and announces transitions to an outbound sink.
// The platform layer owns a Machine per session, steps the active game only
// while the machine reports Playing, and forwards the emitted events to
// whatever is hosting the session (logger, SSH client, score recorder).
package lifecycle

import "maps"

// State is a lifecycle phase. A session is always in exactly one.
type State int

const (
	// Idle is the initial state: mounted but not yet started.
	Idle State = iota
	// Playing means the per-frame simulation runs.
	Playing
	// Paused freezes simulation without discarding any state.
	Paused
	// GameOver is the terminal state of a run; Reset or Start leaves it.
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind names the fixed set of outbound messages.
type EventKind string

const (
	EventReady       EventKind = "ready"
	EventStart       EventKind = "start"
	EventPause       EventKind = "pause"
	EventResume      EventKind = "resume"
	EventGameOver    EventKind = "game_over"
	EventScoreUpdate EventKind = "score_update"
)

// Event is one outbound message. Result is set only for EventGameOver;
// Score is set for EventScoreUpdate and EventGameOver.
type Event struct {
	Kind   EventKind
	Score  int
	Result *Result
}

// Result carries the final outcome of a run.
type Result struct {
	Score     int
	HighScore int
	Level     int
	Meta      map[string]string
}

// Machine is the four-state lifecycle gate.
// All methods are synchronous and run on the session's single frame
// goroutine; invalid transitions are silent no-ops rather than errors,
// matching how a pause key pressed on the menu should simply do nothing.
type Machine struct {
	state     State
	score     int
	highScore int
	notify    func(Event)
}

// New creates a machine in Idle and fires the one-time ready event.
// highScore seeds the persisted best from storage; notify may be nil.
func New(highScore int, notify func(Event)) *Machine {
	m := &Machine{
		state:     Idle,
		highScore: highScore,
		notify:    notify,
	}
	m.emit(Event{Kind: EventReady})
	return m
}

func (m *Machine) emit(e Event) {
	if m.notify != nil {
		m.notify(e)
	}
}

// State returns the current lifecycle phase.
func (m *Machine) State() State {
	return m.state
}

// Playing reports whether per-frame simulation should run.
func (m *Machine) Playing() bool {
	return m.state == Playing
}

// Score returns the running score of the current run.
func (m *Machine) Score() int {
	return m.score
}

// HighScore returns the best score seen, including past sessions.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Start begins a run from Idle or GameOver, resetting the running score.
func (m *Machine) Start() {
	if m.state != Idle && m.state != GameOver {
		return
	}
	m.state = Playing
	m.score = 0
	m.emit(Event{Kind: EventStart})
}

// Pause freezes a running game. No-op unless Playing.
func (m *Machine) Pause() {
	if m.state != Playing {
		return
	}
	m.state = Paused
	m.emit(Event{Kind: EventPause})
}

// Resume continues a paused game. No-op unless Paused.
func (m *Machine) Resume() {
	if m.state != Paused {
		return
	}
	m.state = Playing
	m.emit(Event{Kind: EventResume})
}

// End finishes the run with its final result. The machine fills in the
// high score (raising it if beaten) before emitting. No-op unless Playing
// or Paused.
func (m *Machine) End(res Result) {
	if m.state != Playing && m.state != Paused {
		return
	}
	m.state = GameOver
	m.score = res.Score
	if res.Score > m.highScore {
		m.highScore = res.Score
	}
	res.HighScore = m.highScore
	if res.Meta != nil {
		res.Meta = maps.Clone(res.Meta)
	}
	m.emit(Event{Kind: EventGameOver, Score: res.Score, Result: &res})
}

// Reset returns from GameOver to Idle without starting a new run.
func (m *Machine) Reset() {
	if m.state != GameOver {
		return
	}
	m.state = Idle
	m.score = 0
}

// SetScore records the running score, emitting a score update only when
// the value actually changes. No-op unless Playing.
func (m *Machine) SetScore(score int) {
	if m.state != Playing || score == m.score {
		return
	}
	m.score = score
	m.emit(Event{Kind: EventScoreUpdate, Score: score})
}
