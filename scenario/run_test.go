package scenario_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlift/dispatcher"
	"github.com/katalvlaran/lvlift/ride"
	"github.com/katalvlaran/lvlift/scenario"
)

func reqStep(from, to ride.Floor) scenario.Step {
	return scenario.Step{Request: &ride.Request{From: from, To: to}}
}

func tickStep(n int) scenario.Step { return scenario.Step{Ticks: n} }

func TestRun_LobbyRush(t *testing.T) {
	cfg, err := scenario.Load(filepath.Join("testdata", "lobby_rush.yaml"))
	require.NoError(t, err)

	trace, err := scenario.Run(cfg)
	require.NoError(t, err)
	require.Len(t, trace.Frames, len(cfg.Steps))
	assert.Equal(t, []dispatcher.Name{dispatcher.A, dispatcher.B, dispatcher.B, dispatcher.B}, trace.Assignments())
	assert.Zero(t, trace.Fallbacks)

	// After the single tick B has delivered both lobby passengers at 1.
	tick := trace.Frames[3]
	assert.Nil(t, tick.Request)
	assert.Empty(t, tick.Assigned)
	assert.Equal(t, ride.Floor(1), tick.Fleet.Elevators[0].Floor)
	assert.Equal(t, []ride.Ride{{From: 0, To: 2, Persons: 1}}, tick.Fleet.Elevators[0].Rides)
	assert.Equal(t, ride.Floor(1), tick.Fleet.Elevators[1].Floor)
	assert.Empty(t, tick.Fleet.Elevators[1].Rides)

	last, ok := trace.Last()
	require.True(t, ok)
	assert.Equal(t, ride.Floor(2), last.Fleet.Elevators[0].Floor)
	assert.Equal(t, ride.Floor(3), last.Fleet.Elevators[1].Floor)
	for _, st := range last.Fleet.Elevators {
		assert.Empty(t, st.Rides, "elevator %s", st.Name)
	}
}

func TestRun_EnvOverrides(t *testing.T) {
	t.Setenv(scenario.EnvElevators, "")
	t.Setenv(scenario.EnvCapacity, "")
	t.Setenv(scenario.EnvVerify, "")

	cfg, err := scenario.Load(filepath.Join("testdata", "lobby_rush.yaml"))
	require.NoError(t, err)
	require.NoError(t, scenario.ApplyEnv(&cfg, filepath.Join("testdata", "fleet.env")))

	trace, err := scenario.Run(cfg)
	require.NoError(t, err)
	assert.Equal(t,
		[]dispatcher.Name{dispatcher.A, dispatcher.B, dispatcher.C, dispatcher.B},
		trace.Assignments())
	last, _ := trace.Last()
	require.Len(t, last.Fleet.Elevators, 3)
	assert.Equal(t, 4, last.Fleet.Elevators[2].Capacity)
}

func TestRun_FramesAreDetached(t *testing.T) {
	trace, err := scenario.Run(scenario.Config{
		Elevators: 1,
		Capacity:  4,
		Steps:     []scenario.Step{reqStep(0, 3), tickStep(1), reqStep(1, 2)},
	})
	require.NoError(t, err)

	assert.Equal(t, []ride.Ride{{From: 0, To: 3, Persons: 1}}, trace.Frames[0].Fleet.Elevators[0].Rides)
	assert.Equal(t, ride.Floor(0), trace.Frames[0].Fleet.Elevators[0].Floor)
	assert.Equal(t, ride.Floor(1), trace.Frames[1].Fleet.Elevators[0].Floor)
	assert.Equal(t, []ride.Ride{
		{From: 0, To: 1, Persons: 1},
		{From: 1, To: 2, Persons: 2},
		{From: 2, To: 3, Persons: 1},
	}, trace.Frames[2].Fleet.Elevators[0].Rides)
}

func TestRun_CountsFallbacks(t *testing.T) {
	trace, err := scenario.Run(scenario.Config{
		Elevators: 1,
		Capacity:  10,
		Verify:    true,
		Steps:     []scenario.Step{reqStep(0, 2), reqStep(1, 0), reqStep(1, 3)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, trace.Fallbacks)
}

func TestRun_Errors(t *testing.T) {
	_, err := scenario.Run(scenario.Config{Elevators: 1, Capacity: 1})
	require.ErrorIs(t, err, scenario.ErrEmptyScenario)

	_, err = scenario.Run(scenario.Config{Elevators: 5, Capacity: 1, Steps: []scenario.Step{tickStep(1)}})
	require.ErrorIs(t, err, dispatcher.ErrBadFleetSize)

	_, err = scenario.Run(scenario.Config{Elevators: 1, Capacity: 0, Steps: []scenario.Step{tickStep(1)}})
	require.ErrorIs(t, err, dispatcher.ErrBadCapacity)

	_, err = scenario.Run(scenario.Config{Elevators: 1, Capacity: 1, Steps: []scenario.Step{{}}})
	require.ErrorIs(t, err, scenario.ErrBadStep)
}

func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	_, err := scenario.Run(scenario.Config{
		Elevators: 2,
		Capacity:  3,
		Steps:     []scenario.Step{reqStep(0, 1), tickStep(1)},
	}, scenario.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"replay started"`)
	assert.Contains(t, out, `"message":"request assigned"`)
	assert.Contains(t, out, `"message":"step replayed"`)
	assert.Contains(t, out, `"message":"replay finished"`)
}

func TestRun_DispatcherOptions(t *testing.T) {
	var got []dispatcher.Name
	_, err := scenario.Run(scenario.Config{
		Elevators: 2,
		Capacity:  3,
		Steps:     []scenario.Step{reqStep(0, 1), reqStep(4, 2)},
	}, scenario.WithDispatcherOptions(dispatcher.WithOnAssign(func(n dispatcher.Name, _ ride.Request) {
		got = append(got, n)
	})))
	require.NoError(t, err)
	assert.Equal(t, []dispatcher.Name{dispatcher.A, dispatcher.B}, got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := scenario.NewLogger(&buf, zerolog.InfoLevel)
	log.Debug().Msg("hidden")
	log.Info().Int("step", 3).Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "step=3")
}

func TestTrace_Last_Empty(t *testing.T) {
	_, ok := scenario.Trace{}.Last()
	assert.False(t, ok)
	assert.Empty(t, scenario.Trace{}.Assignments())
}
