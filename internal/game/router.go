package game

// Router maps raw directional intents from any input source (keyboard,
// on-screen pad) onto the engine. All calls run on the main thread, so
// there is never a race with a tick.
type Router struct {
	state *State
}

func NewRouter(state *State) *Router {
	return &Router{state: state}
}

// DirectionIntent buffers a direction change for the next tick. An
// exact reversal of the committed direction is dropped (instant 180°
// self-collision), as is anything that is not a cardinal unit vector.
// Only the most recent intent before the next tick survives.
func (r *Router) DirectionIntent(d Direction) {
	if !d.IsCardinal() {
		return
	}
	if d == r.state.dir.Opposite() {
		return
	}
	r.state.pending = d
	r.state.pendingSet = true
}

// PauseToggle flips between running and paused. After game over it acts
// as a restart signal instead.
func (r *Router) PauseToggle() {
	switch r.state.phase {
	case PhaseGameOver:
		r.state.Restart()
	case PhasePaused:
		r.state.Resume()
	default:
		r.state.Pause()
	}
}

// Restart starts a new run unconditionally.
func (r *Router) Restart() {
	r.state.Restart()
}
