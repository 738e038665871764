package game

import "time"

// Phase is the coarse game state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// State is the authoritative simulation state. It is confined to the
// main thread: only Step, the input router, and the pause/restart
// transitions mutate it.
type State struct {
	snake      []Cell // head first
	dir        Direction
	pending    Direction
	pendingSet bool
	food       Cell
	score      int
	best       int
	interval   time.Duration
	phase      Phase

	rng *Rand
	bus *EventBus
}

// NewState creates a fresh run. The bus may be nil (tests).
func NewState(seed uint64, bus *EventBus) *State {
	s := &State{rng: NewRand(seed), bus: bus}
	s.reset()
	return s
}

// reset reinitializes everything except the best score and the RNG.
func (s *State) reset() {
	cx := GridSize / 2
	cy := GridSize / 2
	s.snake = s.snake[:0]
	for i := 0; i < StartLength; i++ {
		s.snake = append(s.snake, Cell{X: cx - i, Y: cy})
	}
	s.dir = DirRight
	s.pending = Direction{}
	s.pendingSet = false
	s.score = 0
	s.interval = StartInterval
	s.phase = PhaseRunning
	s.placeFood()
}

// Restart discards the current run and starts a new one. Best is kept.
func (s *State) Restart() {
	s.reset()
	s.bus.Emit(Event{Type: EventRestart, Best: s.best, Interval: s.interval})
}

// Pause suspends the simulation. No-op unless running.
func (s *State) Pause() {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhasePaused
	s.bus.Emit(Event{Type: EventPause, Score: s.score, Best: s.best})
}

// Resume continues a paused run. No-op unless paused; game over can
// only be left via Restart.
func (s *State) Resume() {
	if s.phase != PhasePaused {
		return
	}
	s.phase = PhaseRunning
	s.bus.Emit(Event{Type: EventResume, Score: s.score, Best: s.best})
}

// Step advances the simulation by one tick. The scheduler guarantees it
// is only called while running.
func (s *State) Step() {
	// Commit the buffered direction, if any, before moving.
	if s.pendingSet {
		s.dir = s.pending
		s.pendingSet = false
	}

	head := s.snake[0].Add(s.dir)

	// Wall hit, or any current body cell including the not-yet-vacated
	// tail: the run ends with the snake frozen in place.
	if !head.InBounds() || s.occupied(head) {
		s.gameOver()
		return
	}

	s.snake = append([]Cell{head}, s.snake...)

	if head == s.food {
		s.score++
		if s.interval-SpeedStep > MinInterval {
			s.interval -= SpeedStep
		} else {
			s.interval = MinInterval
		}
		s.placeFood()
		s.bus.Emit(Event{Type: EventEat, Score: s.score, Best: s.best, Interval: s.interval})
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}
}

func (s *State) gameOver() {
	s.phase = PhaseGameOver
	if s.score > s.best {
		s.best = s.score
		s.bus.Emit(Event{Type: EventNewBest, Score: s.score, Best: s.best})
	}
	s.bus.Emit(Event{Type: EventGameOver, Score: s.score, Best: s.best})
}

// placeFood picks a free cell uniformly by rejection sampling. The
// board has 400 cells and the snake stays far shorter in practice, so
// the loop terminates quickly.
func (s *State) placeFood() {
	for {
		c := Cell{X: s.rng.Intn(GridSize), Y: s.rng.Intn(GridSize)}
		if !s.occupied(c) {
			s.food = c
			return
		}
	}
}

func (s *State) occupied(c Cell) bool {
	for _, b := range s.snake {
		if b == c {
			return true
		}
	}
	return false
}

// SetBest seeds the best score from the persisted value at startup.
func (s *State) SetBest(v int) {
	if v > 0 {
		s.best = v
	}
}

func (s *State) Phase() Phase            { return s.phase }
func (s *State) Score() int              { return s.score }
func (s *State) Best() int               { return s.best }
func (s *State) Interval() time.Duration { return s.interval }
func (s *State) Food() Cell              { return s.food }
func (s *State) Head() Cell              { return s.snake[0] }
func (s *State) Len() int                { return len(s.snake) }

// Snapshot is an immutable read-only copy handed to consumers (the
// renderer, the HUD). Consumers never mutate engine state.
type Snapshot struct {
	Snake    []Cell
	Dir      Direction
	Food     Cell
	Score    int
	Best     int
	Interval time.Duration
	Phase    Phase
}

func (s *State) Snapshot() Snapshot {
	body := make([]Cell, len(s.snake))
	copy(body, s.snake)
	return Snapshot{
		Snake:    body,
		Dir:      s.dir,
		Food:     s.food,
		Score:    s.score,
		Best:     s.best,
		Interval: s.interval,
		Phase:    s.phase,
	}
}
