package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Settings holds the user-tunable presentation options. Gameplay
// tunables are compile-time constants (config.go); nothing here can
// affect simulation behavior.
type Settings struct {
	Theme     string  `json:"theme"`
	SFXVolume float64 `json:"sfx_volume"`
	ShowPad   bool    `json:"show_pad"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:     "classic",
		SFXVolume: 0.8,
		ShowPad:   true,
	}
}

// DefaultSettingsPath places the settings file next to the score db.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gridsnake", "settings.json")
}

// LoadSettings reads the settings file, writing one with defaults when
// it does not exist. Any failure falls back to defaults.
func LoadSettings(path string) Settings {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			saveSettings(path, s)
		}
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings()
	}
	s.sanitize()
	return s
}

func saveSettings(path string, s Settings) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}
	os.WriteFile(path, data, 0o644)
}

func (s *Settings) sanitize() {
	s.SFXVolume = clampF(s.SFXVolume, 0, 1)
	if s.Theme == "" {
		s.Theme = "classic"
	}
}

// WatchSettings reloads the settings file on change and delivers the
// result on the returned channel. The frame loop drains the channel, so
// reloads apply on the main thread like every other state change.
// Returns nil when the watcher cannot be created; live reload is an
// optional nicety.
func WatchSettings(path string) <-chan Settings {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil
	}

	out := make(chan Settings, 1)
	go func() {
		defer watcher.Close()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s := LoadSettings(path)
				// Most recent settings win; drop a stale pending value.
				select {
				case out <- s:
				default:
					select {
					case <-out:
					default:
					}
					out <- s
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out
}
