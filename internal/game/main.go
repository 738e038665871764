package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop owns the window, the frame loop, and the wiring between
// engine, router, scheduler, renderer, and the persistence/settings
// collaborators. Everything that touches game state runs on this one
// thread.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Settings: load once, then hot-reload on file change.
	settingsPath := DefaultSettingsPath()
	settings := LoadSettings(settingsPath)
	settingsCh := WatchSettings(settingsPath)
	SetSFXVolume(settings.SFXVolume)
	theme := ThemeByName(settings.Theme)

	// Best score survives across sessions. A failed open degrades to a
	// session-only best; nil store methods are no-ops.
	store, err := OpenScoreStore(DefaultStorePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "score store unavailable (best score won't persist): %v\n", err)
		store = nil
	}
	defer store.Close()

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("GRIDSNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	bus := NewEventBus()
	particles := NewParticleSystem(256, seed^0xBEAD)
	bus.Subscribe(EventEat, func(Event) { PlaySound(SoundEat) })
	bus.Subscribe(EventPause, func(Event) { PlaySound(SoundPause) })
	bus.Subscribe(EventResume, func(Event) { PlaySound(SoundPause) })
	bus.Subscribe(EventRestart, func(Event) { PlaySound(SoundRestart) })
	bus.Subscribe(EventNewBest, func(Event) { PlaySound(SoundNewBest) })
	bus.Subscribe(EventGameOver, func(e Event) {
		PlaySound(SoundGameOver)
		// Fire-and-forget persistence: a lost write only costs the
		// next session its record.
		go store.Set(BestScoreKey, e.Best)
	})

	state := NewState(seed, bus)
	state.SetBest(store.Get(BestScoreKey))
	// Cosmetic bursts at the head cell; emit happens inside Step, so
	// the head is the just-eaten (or just-fatal) cell.
	bus.Subscribe(EventEat, func(Event) {
		particles.SpawnBurst(state.Head(), 14, theme.Food)
	})
	bus.Subscribe(EventGameOver, func(Event) {
		particles.SpawnBurst(state.Head(), 22, theme.Danger)
	})
	router := NewRouter(state)
	pad := NewPad()
	in := NewInput()

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.SetClearColor(theme.Background)

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	sched := NewScheduler(state.Interval())
	sched.Start(time.Now())

	last := glfw.GetTime()
	for !window.ShouldClose() {
		nowGL := glfw.GetTime()
		dt := nowGL - last
		last = nowGL
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		now := time.Now()

		var padInput *Pad
		if settings.ShowPad {
			padInput = pad
		}
		ProcessInput(window, in, router, padInput)
		pad.Update(dt)
		particles.Update(dt)

		// Settings hot-reload, applied on the main thread like every
		// other state change.
		if settingsCh != nil {
			select {
			case s2 := <-settingsCh:
				settings = s2
				SetSFXVolume(settings.SFXVolume)
				theme = ThemeByName(settings.Theme)
				rend.SetClearColor(theme.Background)
			default:
			}
		}

		// The scheduler only ticks while the game runs. Pause, game
		// over, and restart all pass through this sync, so every path
		// out of the running phase releases the tick source.
		if state.Phase() == PhaseRunning {
			if !sched.Running() {
				sched.SetInterval(state.Interval(), now)
				sched.Start(now)
			} else if state.Interval() != sched.Interval() {
				// Restart during a run went back to the start speed.
				sched.SetInterval(state.Interval(), now)
			}
		} else if sched.Running() {
			sched.Stop()
		}

		if sched.Tick(now) && state.Phase() == PhaseRunning {
			state.Step()
			if state.Phase() != PhaseRunning {
				sched.Stop()
			} else if state.Interval() != sched.Interval() {
				// Eating speeds the game up starting with the very
				// next tick, a full new interval from now.
				sched.SetInterval(state.Interval(), now)
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		snap := state.Snapshot()
		rend.BeginFrame(fbW, fbH)
		RenderBoard(rend, snap, theme, fbW)
		particles.Render(rend, fbW)
		if settings.ShowPad {
			pad.Render(rend, theme, fbW)
		}
		RenderHUD(rend, snap, theme, fbW)
		rend.FlushSprites(fbW, fbH)
		rend.FlushText(fbW, fbH)
		window.SwapBuffers()
	}
}
