package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := LoadSettings(path)
	if s != DefaultSettings() {
		t.Errorf("missing file should return defaults, got %+v", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults file not written: %v", err)
	}
}

func TestLoadSettingsMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := LoadSettings(path)
	if s != DefaultSettings() {
		t.Errorf("malformed file should return defaults, got %+v", s)
	}
}

func TestLoadSettingsSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"theme":"","sfx_volume":3.5,"show_pad":true}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := LoadSettings(path)
	if s.SFXVolume != 1 {
		t.Errorf("volume not clamped: %v", s.SFXVolume)
	}
	if s.Theme != "classic" {
		t.Errorf("empty theme not defaulted: %q", s.Theme)
	}
}

func TestLoadSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := Settings{Theme: "phosphor", SFXVolume: 0.3, ShowPad: false}
	saveSettings(path, want)

	if got := LoadSettings(path); got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("no-such-theme"); got.Name != Themes[0].Name {
		t.Errorf("unknown theme should fall back to %q, got %q", Themes[0].Name, got.Name)
	}
	if got := ThemeByName("phosphor"); got.Name != "phosphor" {
		t.Errorf("named theme lookup failed: %q", got.Name)
	}
}
