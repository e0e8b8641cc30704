package dispatcher_test

import (
	"fmt"

	"github.com/katalvlaran/lvlift/dispatcher"
	"github.com/katalvlaran/lvlift/ride"
)

// ExampleDispatcher_Request spreads requests over a two-car fleet.
//
// Scenario:
//
//	A goes to floor 2, B to floor 1. A third passenger boarding at the lobby is
//	given to B: both queues hold one ride, and B will rest closer to the lobby.
func ExampleDispatcher_Request() {
	d, err := dispatcher.New(2, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(d.Request(ride.Request{From: 0, To: 2}))
	fmt.Println(d.Request(ride.Request{From: 0, To: 1}))
	fmt.Println(d.Request(ride.Request{From: 0, To: 1}))
	// Output:
	// A
	// B
	// B
}

// ExampleDispatcher_Snapshot prints the fleet after a few ticks.
func ExampleDispatcher_Snapshot() {
	d, _ := dispatcher.New(2, 4)
	d.Request(ride.Request{From: 0, To: 3})
	d.Request(ride.Request{From: 2, To: 0})
	d.Tick()

	snap, err := d.Snapshot()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, e := range snap.Elevators {
		fmt.Printf("%s floor=%d rides=%v\n", e.Name, e.Floor, e.Rides)
	}
	// Output:
	// A floor=1 rides=[{0→3 ×1}]
	// B floor=1 rides=[{0→2 ×0} {2→0 ×1}]
}
