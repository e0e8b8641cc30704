package elevator

import "github.com/katalvlaran/lvlift/ride"

// Relation is the geometric position of an additional ride relative to an
// up-going current ride. Down-going current rides are reflected before they are
// classified, so the table below only needs one orientation.
type Relation int

const (
	// RelationAfter: current ends strictly below the additional origin.
	//
	//	-----> current
	//	          -----> additional (up or down)
	RelationAfter Relation = iota + 1

	// RelationAdjacent: current ends exactly where additional starts.
	//
	//	-----> current
	//	      -----> additional (up or down)
	RelationAdjacent

	// RelationBefore: additional starts below current.
	//
	//	          -----> current
	//	-----> additional (up or down)
	RelationBefore

	// RelationIdentical: same origin, same destination.
	//
	//	-----> current
	//	-----> additional
	RelationIdentical

	// RelationSameOriginShorter: same origin, additional stops earlier.
	//
	//	----------> current
	//	-----> additional
	RelationSameOriginShorter

	// RelationSameOriginLonger: same origin, additional goes further.
	//
	//	-----> current
	//	----------> additional
	RelationSameOriginLonger

	// RelationSameDestination: additional boards later, leaves at current's end.
	//
	//	----------> current
	//	     -----> additional
	RelationSameDestination

	// RelationOverlap: additional boards inside current and leaves beyond it.
	//
	//	----------> current
	//	     ----------> additional
	RelationOverlap

	// RelationNested: additional lies strictly inside current.
	//
	//	---------------> current
	//	     -----> additional
	RelationNested

	// RelationOpposing: additional starts inside current and travels down.
	//
	//	    -----> current
	//	<----- additional
	RelationOpposing
)

var relationNames = [...]string{
	RelationAfter:             "after",
	RelationAdjacent:          "adjacent",
	RelationBefore:            "before",
	RelationIdentical:         "identical",
	RelationSameOriginShorter: "same-origin-shorter",
	RelationSameOriginLonger:  "same-origin-longer",
	RelationSameDestination:   "same-destination",
	RelationOverlap:           "overlap",
	RelationNested:            "nested",
	RelationOpposing:          "opposing",
}

// String implements fmt.Stringer.
func (r Relation) String() string {
	if r < RelationAfter || r > RelationOpposing {
		return "unknown"
	}

	return relationNames[r]
}

// Classify places additional relative to current, which must be going up.
// The checks run in a fixed order: the three position-only relations first
// (they apply to additional rides of either direction), then the overlapping
// up-going shapes, and finally RelationOpposing for everything left.
func Classify(current, additional ride.Ride) Relation {
	switch {
	case current.To < additional.From:
		return RelationAfter
	case current.To == additional.From:
		return RelationAdjacent
	case additional.From < current.From:
		return RelationBefore
	}

	if additional.IsUp() {
		if current.From == additional.From {
			switch {
			case additional.To == current.To:
				return RelationIdentical
			case additional.To < current.To:
				return RelationSameOriginShorter
			default:
				return RelationSameOriginLonger
			}
		}
		// current.From < additional.From < current.To here.
		switch {
		case additional.To == current.To:
			return RelationSameDestination
		case current.To < additional.To:
			return RelationOverlap
		default:
			return RelationNested
		}
	}

	return RelationOpposing
}
