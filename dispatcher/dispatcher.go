package dispatcher

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/tiendc/go-deepcopy"

	"github.com/katalvlaran/lvlift/elevator"
	"github.com/katalvlaran/lvlift/ride"
)

// Dispatcher owns a fixed fleet of named elevators and routes each request to
// exactly one of them. A single mutex guards the whole fleet, so a *Dispatcher
// can be shared between goroutines; calls are serialized.
type Dispatcher struct {
	mu    sync.Mutex
	size  int
	fleet [MaxElevators]elevator.Elevator
	opts  Options
}

// New builds a fleet of numberOfElevators elevators named A, B, C, D in order,
// each with the given capacity, all idle at the lobby.
//
// Returns ErrBadFleetSize if numberOfElevators is outside 1..MaxElevators,
// ErrBadCapacity if capacityOfAnElevator <= 0.
func New(numberOfElevators, capacityOfAnElevator int, opts ...Option) (*Dispatcher, error) {
	if numberOfElevators < 1 || numberOfElevators > MaxElevators {
		return nil, fmt.Errorf("%w: got %d", ErrBadFleetSize, numberOfElevators)
	}
	if capacityOfAnElevator <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacityOfAnElevator)
	}

	d := &Dispatcher{size: numberOfElevators, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	for i := 0; i < d.size; i++ {
		e, err := elevator.New(capacityOfAnElevator, d.opts.ElevatorOptions...)
		if err != nil {
			return nil, fmt.Errorf("dispatcher: elevator %s: %w", names[i], err)
		}
		d.fleet[i] = e
	}

	return d, nil
}

// Names lists the fleet in creation order.
func (d *Dispatcher) Names() []Name {
	return slices.Clone(names[:d.size])
}

// Elevator returns the current snapshot of the named elevator.
func (d *Dispatcher) Elevator(name Name) (elevator.Elevator, bool) {
	i := name.index()
	if i < 0 || i >= d.size {
		return elevator.Elevator{}, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.fleet[i], true
}

// Request picks one elevator for r, folds r into its itinerary and returns
// the elevator's name. Same-floor requests are still assigned; the chosen
// elevator simply ignores them.
func (d *Dispatcher) Request(r ride.Request) Name {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.choose(r)
	chosen := d.fleet[i]
	d.fleet[i] = chosen.Request(r)

	d.opts.Logger.Debug().
		Str("elevator", string(names[i])).
		Int("from", int(r.From)).
		Int("to", int(r.To)).
		Int("queue", chosen.QueueLength()).
		Int("final_floor", int(chosen.FinalFloor())).
		Msg("request assigned")
	d.opts.OnAssign(names[i], r)

	return names[i]
}

// Tick advances every elevator by one floor step.
func (d *Dispatcher) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i < d.size; i++ {
		d.fleet[i] = d.fleet[i].Tick()
	}
}

// Snapshot returns a deep copy of the fleet state that stays valid after
// further Request/Tick calls and may be modified freely by the caller.
func (d *Dispatcher) Snapshot() (Snapshot, error) {
	d.mu.Lock()
	live := Snapshot{Elevators: make([]ElevatorState, d.size)}
	for i := 0; i < d.size; i++ {
		s := d.fleet[i].State()
		live.Elevators[i] = ElevatorState{Name: names[i], Capacity: s.Capacity, Floor: s.Floor, Rides: s.Rides}
	}
	d.mu.Unlock()

	var out Snapshot
	if err := deepcopy.Copy(&out, &live); err != nil {
		return Snapshot{}, fmt.Errorf("dispatcher: snapshot: %w", err)
	}

	return out, nil
}

// choose orders the fleet by ascending queue length, then by ascending distance
// between r.From and each elevator's final floor. The sort is stable, so
// remaining ties go to the first name. Caller holds d.mu.
func (d *Dispatcher) choose(r ride.Request) int {
	var buf [MaxElevators]int
	order := buf[:d.size]
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		ea, eb := d.fleet[a], d.fleet[b]
		if c := cmp.Compare(ea.QueueLength(), eb.QueueLength()); c != 0 {
			return c
		}

		return cmp.Compare(ride.Distance(r.From, ea.FinalFloor()), ride.Distance(r.From, eb.FinalFloor()))
	})

	return order[0]
}
