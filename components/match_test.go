package components

import "testing"

func TestComboTracker(t *testing.T) {
	var c ComboTracker

	for want := 0; want < 3; want++ {
		if got := c.Register(10, 10); got != want {
			t.Fatalf("hit %d scaled by %d, want %d", want+1, got, want)
		}
	}

	c.Reset(100, 240)
	if got := c.Register(200, 10); got != 0 || c.Hits != 0 {
		t.Errorf("during cooldown: Register = %d, Hits = %d, want 0/0", got, c.Hits)
	}
	if got := c.Register(340, 10); got != 0 || c.Hits != 1 {
		t.Errorf("after cooldown: Register = %d, Hits = %d, want 0/1", got, c.Hits)
	}
}

func TestComboTrackerCaps(t *testing.T) {
	var c ComboTracker
	last := 0
	for range 20 {
		last = c.Register(0, 10)
	}
	if last != 10 || c.Hits != 10 {
		t.Errorf("Register = %d, Hits = %d, want both capped at 10", last, c.Hits)
	}
}

func TestHealthDamageClamps(t *testing.T) {
	h := HealthData{Current: 50, Max: 100}
	if taken := h.Damage(80); taken != 50 || h.Current != 0 {
		t.Errorf("Damage(80) took %v leaving %v", taken, h.Current)
	}
	h.Heal(500)
	if h.Current != 100 {
		t.Errorf("Heal(500) = %v, want 100", h.Current)
	}
	if taken := h.Damage(-5); taken != 0 || h.Current != 100 {
		t.Errorf("negative damage changed health to %v", h.Current)
	}
}

func TestOrbAbsorbArmor(t *testing.T) {
	o := OrbData{Armor: 30, MaxArmor: 100}
	if overflow := o.AbsorbArmor(50); overflow != 20 || o.Armor != 0 {
		t.Errorf("overflow = %v armor = %v, want 20/0", overflow, o.Armor)
	}
	o.RegenArmor(500)
	if o.Armor != 100 {
		t.Errorf("armor = %v, want capped at 100", o.Armor)
	}
}
