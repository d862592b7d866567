package gamemath

import "testing"

func TestWeaponZones(t *testing.T) {
	body := Rect{X: 100, Y: 500, W: 60, H: 120}

	handle, blade := WeaponZones(body, 1, 40, 130)
	if handle != (Rect{X: 160, Y: 500, W: 40, H: 120}) {
		t.Errorf("right handle = %+v", handle)
	}
	if blade != (Rect{X: 200, Y: 500, W: 90, H: 120}) {
		t.Errorf("right blade = %+v", blade)
	}

	handle, blade = WeaponZones(body, -1, 40, 130)
	if handle != (Rect{X: 60, Y: 500, W: 40, H: 120}) {
		t.Errorf("left handle = %+v", handle)
	}
	if blade != (Rect{X: -30, Y: 500, W: 90, H: 120}) {
		t.Errorf("left blade = %+v", blade)
	}
	if handle.Overlaps(blade) {
		t.Error("handle and blade zones overlap")
	}
}

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"partial", Rect{X: 9, Y: 9, W: 5, H: 5}, true},
		{"empty", Rect{X: 2, Y: 2, W: 0, H: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 50}
	if !CircleIntersectsRect(90, 125, 10, r) {
		t.Error("circle touching left edge should intersect")
	}
	if CircleIntersectsRect(80, 80, 10, r) {
		t.Error("circle off the corner should miss")
	}
}

func TestEdgeGap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 10}
	b := Rect{X: 130, Y: 0, W: 50, H: 10}
	if got := EdgeGap(a, b); got != 30 {
		t.Errorf("EdgeGap(a, b) = %v, want 30", got)
	}
	if got := EdgeGap(b, a); got != 30 {
		t.Errorf("EdgeGap(b, a) = %v, want 30", got)
	}
}

func TestIntegrateVertical(t *testing.T) {
	// Jump from the ground rises on the first step.
	y, vy, grounded := IntegrateVertical(500, 120, -900, 2400, 1800, 620, 0.1)
	if grounded || vy != -660 || y != 434 {
		t.Errorf("jump step = (%v, %v, %v)", y, vy, grounded)
	}

	// Falling past the ground snaps onto it.
	y, vy, grounded = IntegrateVertical(495, 120, 600, 2400, 1800, 620, 0.1)
	if !grounded || vy != 0 || y != 500 {
		t.Errorf("landing step = (%v, %v, %v)", y, vy, grounded)
	}

	// dt = 0 on the ground changes nothing.
	y, vy, grounded = IntegrateVertical(500, 120, 0, 2400, 1800, 620, 0)
	if !grounded || vy != 0 || y != 500 {
		t.Errorf("idle step = (%v, %v, %v)", y, vy, grounded)
	}
}

func TestScaleAboutBottomCenter(t *testing.T) {
	got := ScaleAboutBottomCenter(Rect{X: 100, Y: 500, W: 60, H: 120}, 48, 96)
	want := Rect{X: 106, Y: 524, W: 48, H: 96}
	if got != want {
		t.Errorf("ScaleAboutBottomCenter = %+v, want %+v", got, want)
	}
}
