package system

// Phase is the time of day.
type Phase uint8

const (
	Day Phase = iota
	Night
)

func (p Phase) String() string {
	if p == Night {
		return "Night"
	}
	return "Day"
}

// Clock is the two-state day/night cycle. The zero value is Day.
type Clock struct {
	Phase Phase
}

// Advance flips the phase.
func (c *Clock) Advance() {
	if c.Phase == Day {
		c.Phase = Night
	} else {
		c.Phase = Day
	}
}

// IsDay reports whether it is daytime.
func (c Clock) IsDay() bool { return c.Phase == Day }

// Label returns "Day" or "Night".
func (c Clock) Label() string { return c.Phase.String() }
