package game

import "testing"

func TestParticleBurstAndDecay(t *testing.T) {
	ps := NewParticleSystem(64, 1)
	ps.SpawnBurst(Cell{X: 5, Y: 5}, 12, RGB{R: 255})

	if len(ps.P) != 12 {
		t.Fatalf("expected 12 particles, got %d", len(ps.P))
	}

	ps.Update(0.1)
	if len(ps.P) != 12 {
		t.Errorf("particles died too early: %d left", len(ps.P))
	}

	// Lifetimes cap out at 0.55s.
	ps.Update(1.0)
	if len(ps.P) != 0 {
		t.Errorf("expected all particles dead, %d left", len(ps.P))
	}
}

func TestParticleCapacityBound(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.SpawnBurst(Cell{X: 1, Y: 1}, 50, RGB{})

	if len(ps.P) != 8 {
		t.Errorf("burst exceeded capacity: %d", len(ps.P))
	}
}
