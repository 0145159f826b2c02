package actor

// HealthDisplay is a fixed row of indicators with a visible prefix.
// Slots are created once and never resized; slots at or beyond the
// visible count are hidden, not destroyed.
type HealthDisplay struct {
	slots   []Indicator
	visible int
}

func newHealthDisplay(scene Scene, n int, origin Vec, spacing float64) *HealthDisplay {
	d := &HealthDisplay{slots: make([]Indicator, n), visible: n}
	for i := range d.slots {
		pos := Vec{X: origin.X + float64(i)*spacing, Y: origin.Y}
		d.slots[i] = scene.NewIndicator(i, pos)
		if d.slots[i] != nil {
			d.slots[i].SetVisible(true)
		}
	}
	return d
}

// Len is the number of slots.
func (d *HealthDisplay) Len() int {
	if d == nil {
		return 0
	}
	return len(d.slots)
}

// Visible is the number of slots currently shown.
func (d *HealthDisplay) Visible() int {
	if d == nil {
		return 0
	}
	return d.visible
}

// IsVisible reports whether slot i is shown.
func (d *HealthDisplay) IsVisible(i int) bool {
	return d != nil && i >= 0 && i < d.visible
}

// Show shows the first n slots and hides the rest. n is clamped to the
// slot count, so the display can never show more than it was built with.
func (d *HealthDisplay) Show(n int) {
	if d == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > len(d.slots) {
		n = len(d.slots)
	}
	if n == d.visible {
		return
	}
	for i, slot := range d.slots {
		if slot == nil {
			continue
		}
		was := i < d.visible
		now := i < n
		if was != now {
			slot.SetVisible(now)
		}
	}
	d.visible = n
}
