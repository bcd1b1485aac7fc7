package component

// Health tracks current and maximum hit points.
type Health struct {
	Current, Max int
}

// Damage lowers Current by amount, clamping at 0. There is no upper clamp:
// a negative amount raises Current past Max.
func (h *Health) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal raises Current by amount, clamping at Max.
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Full restores Current to Max.
func (h *Health) Full() { h.Current = h.Max }

// Depleted reports whether Current has reached 0.
func (h Health) Depleted() bool { return h.Current <= 0 }
