package game

import (
	"testing"
)

func TestInitialState(t *testing.T) {
	s := NewState(1, nil)

	if len(s.snake) != StartLength {
		t.Fatalf("expected starting length %d, got %d", StartLength, len(s.snake))
	}
	if s.snake[0] != (Cell{X: 10, Y: 10}) || s.snake[1] != (Cell{X: 9, Y: 10}) {
		t.Errorf("expected centered snake [(10,10) (9,10)], got %v", s.snake)
	}
	if s.dir != DirRight {
		t.Errorf("expected initial direction right, got %v", s.dir)
	}
	if s.phase != PhaseRunning {
		t.Errorf("expected running phase, got %v", s.phase)
	}
	if s.score != 0 {
		t.Errorf("expected score 0, got %d", s.score)
	}
	if s.interval != StartInterval {
		t.Errorf("expected interval %v, got %v", StartInterval, s.interval)
	}
	if s.occupied(s.food) {
		t.Errorf("food spawned on snake at %v", s.food)
	}
}

func TestStepKeepsLengthWithoutFood(t *testing.T) {
	s := NewState(1, nil)
	s.food = Cell{X: 0, Y: 0} // away from the snake's path

	head := s.snake[0]
	s.Step()

	if len(s.snake) != StartLength {
		t.Errorf("length changed without eating: %d", len(s.snake))
	}
	if s.snake[0] != (Cell{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head did not advance right: %v", s.snake[0])
	}
	if s.score != 0 {
		t.Errorf("score changed without eating: %d", s.score)
	}
}

func TestEatGrowsAndSpeedsUp(t *testing.T) {
	s := NewState(7, nil)
	s.snake = []Cell{{X: 10, Y: 10}, {X: 9, Y: 10}}
	s.dir = DirRight
	s.food = Cell{X: 11, Y: 10}

	s.Step()

	want := []Cell{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if len(s.snake) != 3 {
		t.Fatalf("expected length 3 after eating, got %d", len(s.snake))
	}
	for i, c := range want {
		if s.snake[i] != c {
			t.Errorf("snake[%d] = %v, want %v", i, s.snake[i], c)
		}
	}
	if s.score != 1 {
		t.Errorf("expected score 1, got %d", s.score)
	}
	if s.interval != StartInterval-SpeedStep {
		t.Errorf("expected interval %v, got %v", StartInterval-SpeedStep, s.interval)
	}
	if s.occupied(s.food) {
		t.Errorf("new food placed on snake at %v", s.food)
	}
	if s.phase != PhaseRunning {
		t.Errorf("phase should stay running, got %v", s.phase)
	}
}

func TestWallCollisionEndsRun(t *testing.T) {
	s := NewState(3, nil)
	s.snake = []Cell{{X: 19, Y: 10}, {X: 18, Y: 10}}
	s.dir = DirRight
	s.score = 5
	s.best = 2
	s.food = Cell{X: 0, Y: 0}

	s.Step()

	if s.phase != PhaseGameOver {
		t.Fatalf("expected game over, got %v", s.phase)
	}
	// Snake frozen in place.
	if s.snake[0] != (Cell{X: 19, Y: 10}) || len(s.snake) != 2 {
		t.Errorf("snake changed on game over: %v", s.snake)
	}
	if s.best != 5 {
		t.Errorf("best not updated: %d", s.best)
	}
}

func TestSelfCollisionEndsRun(t *testing.T) {
	s := NewState(3, nil)
	// Hook shape: moving right from (5,5) hits the body at (6,5).
	s.snake = []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 7, Y: 5}}
	s.dir = DirRight
	s.food = Cell{X: 0, Y: 0}

	s.Step()

	if s.phase != PhaseGameOver {
		t.Errorf("expected game over on self collision, got %v", s.phase)
	}
	if len(s.snake) != 5 {
		t.Errorf("snake changed on game over: %v", s.snake)
	}
}

func TestTailCellIsStillFatal(t *testing.T) {
	// The tail is popped only after the collision check, so moving into
	// the cell the tail currently occupies ends the run even though
	// that cell would be free next tick.
	s := NewState(3, nil)
	s.snake = []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s.dir = DirRight // head (5,5) -> (6,5), the current tail cell
	s.food = Cell{X: 0, Y: 0}

	s.Step()

	if s.phase != PhaseGameOver {
		t.Errorf("expected game over moving into the tail cell, got %v", s.phase)
	}
}

func TestSpeedFloor(t *testing.T) {
	s := NewState(9, nil)

	s.interval = MinInterval + SpeedStep
	s.food = s.snake[0].Add(s.dir)
	s.Step()
	if s.interval != MinInterval {
		t.Errorf("expected interval at floor %v, got %v", MinInterval, s.interval)
	}

	s.food = s.snake[0].Add(s.dir)
	s.Step()
	if s.interval != MinInterval {
		t.Errorf("interval dropped below floor: %v", s.interval)
	}
}

func TestRestartKeepsBest(t *testing.T) {
	s := NewState(5, nil)
	s.snake = []Cell{{X: 19, Y: 10}, {X: 18, Y: 10}}
	s.dir = DirRight
	s.score = 7
	s.Step() // wall, game over, best = 7

	s.Restart()

	if s.phase != PhaseRunning {
		t.Errorf("expected running after restart, got %v", s.phase)
	}
	if s.score != 0 {
		t.Errorf("score not reset: %d", s.score)
	}
	if s.interval != StartInterval {
		t.Errorf("interval not reset: %v", s.interval)
	}
	if len(s.snake) != StartLength || s.snake[0] != (Cell{X: 10, Y: 10}) {
		t.Errorf("snake not reset: %v", s.snake)
	}
	if s.best != 7 {
		t.Errorf("best lost on restart: %d", s.best)
	}
}

func TestPauseResume(t *testing.T) {
	s := NewState(1, nil)

	s.Pause()
	if s.phase != PhasePaused {
		t.Fatalf("expected paused, got %v", s.phase)
	}
	s.Pause() // no-op while paused
	if s.phase != PhasePaused {
		t.Errorf("double pause changed phase: %v", s.phase)
	}
	s.Resume()
	if s.phase != PhaseRunning {
		t.Errorf("expected running after resume, got %v", s.phase)
	}

	// Game over can only be left via restart.
	s.phase = PhaseGameOver
	s.Pause()
	s.Resume()
	if s.phase != PhaseGameOver {
		t.Errorf("pause/resume should not leave game over, got %v", s.phase)
	}
}

func TestFoodPlacementValidity(t *testing.T) {
	s := NewState(999, nil)
	for i := 0; i < 200; i++ {
		s.placeFood()
		if !s.food.InBounds() {
			t.Fatalf("food out of bounds: %v", s.food)
		}
		if s.occupied(s.food) {
			t.Fatalf("food on snake: %v", s.food)
		}
	}
}

func TestFoodPlacementNearlyFullBoard(t *testing.T) {
	s := NewState(42, nil)
	// Occupy everything except one cell; rejection sampling must land there.
	s.snake = s.snake[:0]
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if x == 3 && y == 17 {
				continue
			}
			s.snake = append(s.snake, Cell{X: x, Y: y})
		}
	}
	s.placeFood()
	if s.food != (Cell{X: 3, Y: 17}) {
		t.Errorf("expected food at the only free cell, got %v", s.food)
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	s := NewState(0xDEADBEEF, nil)
	r := NewRouter(s)
	rng := NewRand(0x5EED)
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	prevScore := 0
	for i := 0; i < 2000 && s.phase == PhaseRunning; i++ {
		if rng.Intn(3) == 0 {
			r.DirectionIntent(dirs[rng.Intn(4)])
		}
		s.Step()
		if s.phase != PhaseRunning {
			break
		}
		for _, c := range s.snake {
			if !c.InBounds() {
				t.Fatalf("step %d: snake cell out of bounds: %v", i, c)
			}
		}
		if s.occupied(s.food) {
			t.Fatalf("step %d: food on snake", i)
		}
		if s.score < prevScore {
			t.Fatalf("step %d: score decreased %d -> %d", i, prevScore, s.score)
		}
		prevScore = s.score
		if s.interval < MinInterval {
			t.Fatalf("step %d: interval below floor: %v", i, s.interval)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewState(12345, nil)
		r := NewRouter(s)
		for i := 0; i < 150 && s.phase == PhaseRunning; i++ {
			switch i {
			case 20:
				r.DirectionIntent(DirDown)
			case 40:
				r.DirectionIntent(DirLeft)
			case 60:
				r.DirectionIntent(DirUp)
			case 80:
				r.DirectionIntent(DirRight)
			}
			s.Step()
		}
		return s.Snapshot()
	}

	a := run()
	b := run()

	if a.Score != b.Score || a.Phase != b.Phase || a.Food != b.Food || a.Dir != b.Dir {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
	if len(a.Snake) != len(b.Snake) {
		t.Fatalf("snake length diverged: %d vs %d", len(a.Snake), len(b.Snake))
	}
	for i := range a.Snake {
		if a.Snake[i] != b.Snake[i] {
			t.Errorf("snake[%d] diverged: %v vs %v", i, a.Snake[i], b.Snake[i])
		}
	}
}

func TestEventsOnEatAndGameOver(t *testing.T) {
	bus := NewEventBus()
	var got []EventType
	for _, et := range []EventType{EventEat, EventGameOver, EventNewBest} {
		et := et
		bus.Subscribe(et, func(Event) { got = append(got, et) })
	}

	s := NewState(11, bus)
	s.food = s.snake[0].Add(s.dir)
	s.Step()

	if len(got) != 1 || got[0] != EventEat {
		t.Fatalf("expected [EventEat], got %v", got)
	}

	got = got[:0]
	s.snake = []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	s.dir = DirLeft
	s.Step()

	if len(got) != 2 || got[0] != EventNewBest || got[1] != EventGameOver {
		t.Fatalf("expected [EventNewBest EventGameOver], got %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState(2, nil)
	snap := s.Snapshot()
	snap.Snake[0] = Cell{X: -1, Y: -1}

	if s.snake[0] == (Cell{X: -1, Y: -1}) {
		t.Error("snapshot shares the snake slice with the engine")
	}
}

func TestSetBest(t *testing.T) {
	s := NewState(2, nil)
	s.SetBest(12)
	if s.best != 12 {
		t.Errorf("best = %d, want 12", s.best)
	}
	s.SetBest(-3) // malformed persisted value treated as absent
	if s.best != 12 {
		t.Errorf("negative best overwrote value: %d", s.best)
	}
}

func TestIntervalNeverIncreasesWithinRun(t *testing.T) {
	s := NewState(77, nil)
	prev := s.interval
	// Feed the snake on every step until it reaches the wall.
	for s.snake[0].Add(s.dir).InBounds() {
		s.food = s.snake[0].Add(s.dir)
		s.Step()
		if s.interval > prev {
			t.Fatalf("interval increased %v -> %v", prev, s.interval)
		}
		if s.interval < MinInterval {
			t.Fatalf("interval below floor: %v", s.interval)
		}
		prev = s.interval
	}
}
