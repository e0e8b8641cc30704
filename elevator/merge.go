package elevator

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlift/ride"
)

// combineFunc rewrites the current ride so that it also serves additional.
// It always returns a freshly allocated slice whose first ride starts at
// current.From.
type combineFunc func(current, additional ride.Ride) []ride.Ride

// merger carries the per-request context of the recursive merge.
// mirrored is true while working on reflected floors.
type merger struct {
	capacity int
	mirrored bool
	opts     *Options
}

func (m merger) mirror() merger {
	m.mirrored = !m.mirrored

	return m
}

// merge folds additional into rides, which must be non-empty.
// Down-going heads are handled by reflecting the whole itinerary, merging in
// the up-going frame and reflecting the result back.
func (m merger) merge(rides []ride.Ride, additional ride.Ride) []ride.Ride {
	if rides[0].IsUp() {
		return m.mergeUp(rides, additional)
	}

	mirrored := m.mirror().mergeUp(ride.ReflectAll(rides), additional.Reflect())

	return ride.ReflectAll(mirrored)
}

func (m merger) mergeUp(rides []ride.Ride, additional ride.Ride) []ride.Ride {
	current := rides[0]
	rel := Classify(current, additional)

	m.opts.Logger.Debug().
		Stringer("current", current).
		Stringer("additional", additional).
		Stringer("relation", rel).
		Bool("mirrored", m.mirrored).
		Int("remaining", len(rides)-1).
		Msg("merge step")

	switch rel {
	case RelationAfter, RelationBefore, RelationOpposing:
		return m.handleIfLast(rides, additional, appendRide)
	case RelationAdjacent:
		return m.handleIfLast(rides, additional, appendAdjacentRide)
	case RelationIdentical:
		return m.handleWithLimitedCapacity(rides, additional, mergeIdenticalRides)
	case RelationSameOriginShorter:
		return m.handleWithLimitedCapacity(rides, additional, mergeSameOriginShorter)
	case RelationSameOriginLonger:
		return m.handleOverflow(rides, additional, mergeSameOriginLonger)
	case RelationSameDestination:
		return m.handleWithLimitedCapacity(rides, additional, mergeSameDestination)
	case RelationOverlap:
		return m.handleOverflow(rides, additional, mergeOverlapping)
	case RelationNested:
		return m.handleWithLimitedCapacity(rides, additional, mergeNested)
	}

	panic(fmt.Sprintf("elevator: unclassified relation %d between %v and %v", rel, current, additional))
}

// handle replaces the head ride with fn's output.
func (m merger) handle(rides []ride.Ride, additional ride.Ride, fn combineFunc) []ride.Ride {
	return append(fn(rides[0], additional), rides[1:]...)
}

// delegate keeps the head ride and merges additional into the remainder.
func (m merger) delegate(rides []ride.Ride, additional ride.Ride) []ride.Ride {
	rest := m.merge(rides[1:], additional)
	out := make([]ride.Ride, 0, len(rest)+1)
	out = append(out, rides[0])

	return append(out, rest...)
}

// handleIfLast appends after the last ride, otherwise delegates deeper.
func (m merger) handleIfLast(rides []ride.Ride, additional ride.Ride, fn combineFunc) []ride.Ride {
	if len(rides) == 1 {
		return m.handle(rides, additional, fn)
	}

	return m.delegate(rides, additional)
}

// withLimitedCapacity runs proceed only when the shared segment fits in the car.
// Otherwise additional is appended after the last ride or delegated deeper.
func (m merger) withLimitedCapacity(rides []ride.Ride, additional ride.Ride, proceed func() []ride.Ride) []ride.Ride {
	if rides[0].Persons+additional.Persons <= m.capacity {
		return proceed()
	}
	if len(rides) == 1 {
		return appendRide(rides[0], additional)
	}

	return m.delegate(rides, additional)
}

func (m merger) handleWithLimitedCapacity(rides []ride.Ride, additional ride.Ride, fn combineFunc) []ride.Ride {
	return m.withLimitedCapacity(rides, additional, func() []ride.Ride {
		return m.handle(rides, additional, fn)
	})
}

// handleOverflow splits the head ride with fn, whose last segment is the part
// of additional beyond current.To. That tail is merged into the remainder and
// must be found again at its head; if not, the split is dropped and the whole
// additional ride is delegated.
func (m merger) handleOverflow(rides []ride.Ride, additional ride.Ride, fn combineFunc) []ride.Ride {
	return m.withLimitedCapacity(rides, additional, func() []ride.Ride {
		split := fn(rides[0], additional)
		if len(rides) == 1 {
			return split
		}

		head, tail := slices.Clip(split[:len(split)-1]), split[len(split)-1]
		next := m.merge(rides[1:], tail)
		if Contains(next, tail) {
			return append(head, next...)
		}

		m.fallback(tail, additional)

		return m.delegate(rides, additional)
	})
}

func (m merger) fallback(tail, additional ride.Ride) {
	if m.mirrored {
		tail, additional = tail.Reflect(), additional.Reflect()
	}
	m.opts.Logger.Warn().
		Stringer("tail", tail).
		Stringer("additional", additional).
		Msg("split tail not retained by remainder; delegating whole ride")
	m.opts.OnFallback(tail, additional)
}

// appendFirstRide starts an itinerary at floor, bridging to additional.From if needed.
func appendFirstRide(floor ride.Floor, additional ride.Ride) []ride.Ride {
	if additional.From == floor {
		return []ride.Ride{additional}
	}

	return []ride.Ride{ride.Deadhead(floor, additional.From), additional}
}

func appendAdjacentRide(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{current, additional}
}

func appendRide(current, additional ride.Ride) []ride.Ride {
	return append([]ride.Ride{current}, appendFirstRide(current.To, additional)...)
}

func mergeIdenticalRides(current, additional ride.Ride) []ride.Ride {
	current.Persons += additional.Persons

	return []ride.Ride{current}
}

func mergeSameOriginShorter(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{
		{From: current.From, To: additional.To, Persons: current.Persons + additional.Persons},
		{From: additional.To, To: current.To, Persons: current.Persons},
	}
}

func mergeSameOriginLonger(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{
		{From: current.From, To: current.To, Persons: current.Persons + additional.Persons},
		{From: current.To, To: additional.To, Persons: additional.Persons},
	}
}

func mergeSameDestination(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{
		{From: current.From, To: additional.From, Persons: current.Persons},
		{From: additional.From, To: current.To, Persons: current.Persons + additional.Persons},
	}
}

func mergeOverlapping(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{
		{From: current.From, To: additional.From, Persons: current.Persons},
		{From: additional.From, To: current.To, Persons: current.Persons + additional.Persons},
		{From: current.To, To: additional.To, Persons: additional.Persons},
	}
}

func mergeNested(current, additional ride.Ride) []ride.Ride {
	return []ride.Ride{
		{From: current.From, To: additional.From, Persons: current.Persons},
		{From: additional.From, To: additional.To, Persons: current.Persons + additional.Persons},
		{From: additional.To, To: current.To, Persons: current.Persons},
	}
}
