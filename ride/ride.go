package ride

// New wraps a request into a ride carrying the given number of persons.
func New(r Request, persons int) Ride {
	return Ride{From: r.From, To: r.To, Persons: persons}
}

// Deadhead returns an empty leg from one floor to another.
func Deadhead(from, to Floor) Ride {
	return Ride{From: from, To: to, Persons: 0}
}

// IsUp reports whether the ride travels towards higher floors.
func (r Ride) IsUp() bool { return r.From < r.To }

// IsDown reports whether the ride travels towards lower floors.
func (r Ride) IsDown() bool { return r.From > r.To }

// Direction returns Up, Down or Idle.
func (r Ride) Direction() Direction {
	switch {
	case r.IsUp():
		return Up
	case r.IsDown():
		return Down
	default:
		return Idle
	}
}

// Request drops the passenger count.
func (r Ride) Request() Request {
	return Request{From: r.From, To: r.To}
}

// Similar reports whether both rides cover the same directed interval.
// Persons are ignored on purpose: similarity, not equality.
func (r Ride) Similar(other Ride) bool {
	return r.From == other.From && r.To == other.To
}

// Reflect mirrors the ride through the lobby (floor f becomes -f).
// A down-going ride becomes up-going and vice versa; Persons is kept.
// Reflect is an involution: r.Reflect().Reflect() == r.
func (r Ride) Reflect() Ride {
	return Ride{From: -r.From, To: -r.To, Persons: r.Persons}
}

// ReflectAll reflects every ride into a newly allocated slice.
func ReflectAll(rides []Ride) []Ride {
	out := make([]Ride, len(rides))
	for i, r := range rides {
		out[i] = r.Reflect()
	}

	return out
}

// Distance returns the number of floors between a and b.
func Distance(a, b Floor) int {
	if a > b {
		return int(a - b)
	}

	return int(b - a)
}
