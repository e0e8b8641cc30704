// Package lvlift is a small discrete-time simulator for a fleet of passenger
// elevators sharing one shaft bank.
//
// 🚀 What is lvlift?
//
//	A pure-Go model of how a building's lifts queue and merge trips:
//		• Rides: directed floor-to-floor legs with a passenger count
//		• Elevators: immutable itineraries that absorb new requests by
//		  splitting, merging and appending legs without breaking capacity
//		• Dispatcher: up to four named cars (A to D), each request goes to the
//		  car with the shortest queue, then the one finishing closest
//		• Scenarios: YAML scripts of requests and ticks, replayed with an
//		  optional invariant check after every step
//
// ✨ Why lvlift?
//
//   - Value semantics – an Elevator never changes under your feet
//   - Checked invariants – contiguity, capacity and leg sanity via Validate
//   - Observable – zerolog loggers and hooks (OnAssign, OnFallback)
//
// Under the hood, everything is organized under four subpackages:
//
//	ride/       Floor, Request, Ride, Direction and reflection helpers
//	elevator/   itinerary merge, Contains, Validate, Tick
//	dispatcher/ fleet ownership, selection and snapshots
//	scenario/   YAML/.env loading and step-by-step replay
//
// Quick example: a car carrying one rider 0→3 picks up a second at 1 bound
// for 2. Its itinerary becomes
//
//	{0→1 ×1} {1→2 ×2} {2→3 ×1}
//
//	go get github.com/katalvlaran/lvlift
package lvlift
