package bounce

import (
	"math"
	"testing"
)

func TestStepAdvancesWithoutWalls(t *testing.T) {
	x, y, vx, vy, bounced := step(10, 5, 20, 10, 0.1, 80, 25)

	if bounced {
		t.Error("unexpected bounce far from walls")
	}
	if math.Abs(x-12) > 1e-9 || math.Abs(y-6) > 1e-9 {
		t.Errorf("position = (%v, %v), want (12, 6)", x, y)
	}
	if vx != 20 || vy != 10 {
		t.Errorf("velocity = (%v, %v), want unchanged (20, 10)", vx, vy)
	}
}

func TestStepReflectsOffRightWall(t *testing.T) {
	// Interior of an 80-wide court ends at column 78
	x, _, vx, _, bounced := step(77.5, 10, 20, 0, 0.1, 80, 25)

	if !bounced {
		t.Fatal("expected a bounce at the right wall")
	}
	if x != 78 {
		t.Errorf("x = %v, want clamped to 78", x)
	}
	if vx != -20 {
		t.Errorf("vx = %v, want reflected to -20", vx)
	}
}

func TestStepReflectsOffTopWall(t *testing.T) {
	_, y, _, vy, bounced := step(40, 1.2, 0, -10, 0.1, 80, 25)

	if !bounced {
		t.Fatal("expected a bounce at the top wall")
	}
	if y != 1 {
		t.Errorf("y = %v, want clamped to 1", y)
	}
	if vy != 10 {
		t.Errorf("vy = %v, want reflected to 10", vy)
	}
}

func TestStepCornerReflectsBothAxes(t *testing.T) {
	x, y, vx, vy, bounced := step(77.9, 22.9, 30, 30, 0.1, 80, 25)

	if !bounced {
		t.Fatal("expected a corner bounce")
	}
	if x != 78 || y != 23 {
		t.Errorf("position = (%v, %v), want clamped to (78, 23)", x, y)
	}
	if vx != -30 || vy != -30 {
		t.Errorf("velocity = (%v, %v), want (-30, -30)", vx, vy)
	}
}

func TestStepLargeDtCannotTunnel(t *testing.T) {
	x, y, _, _, _ := step(40, 12, 500, 500, 1.0, 80, 25)

	if x < 1 || x > 78 || y < 1 || y > 23 {
		t.Errorf("position (%v, %v) escaped the court", x, y)
	}
}

func TestStepDegenerateCourtPinsToCenter(t *testing.T) {
	x, y, _, _, bounced := step(0, 0, 20, 10, 0.1, 2, 2)

	if bounced {
		t.Error("degenerate court should not bounce")
	}
	if x != 1 || y != 1 {
		t.Errorf("position = (%v, %v), want pinned to (1, 1)", x, y)
	}
}

func TestBlipMuteToggle(t *testing.T) {
	b := NewBlip()

	if b.Muted() {
		t.Fatal("new blip should start unmuted")
	}
	if muted := b.ToggleMute(); !muted {
		t.Error("first toggle should mute")
	}
	if muted := b.ToggleMute(); muted {
		t.Error("second toggle should unmute")
	}
}

func TestBlipPlayWithoutInitIsSafe(t *testing.T) {
	b := NewBlip()
	b.Play()
	b.Cleanup()
}
