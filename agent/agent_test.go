package agent

import (
	"math"
	"testing"

	"github.com/codebabbler/SemesterSaat/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed sequences so exploration is deterministic.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1 // never explore by default
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func newTestAgent(t *testing.T, rng Rand) *Agent {
	t.Helper()
	env, err := gridworld.New(4, 15)
	require.NoError(t, err)

	a, err := New(Config{
		Env:          env,
		Alpha:        0.1,
		Gamma:        0.9,
		Epsilon:      0.1,
		EpsilonDecay: 0.995,
		EpsilonMin:   0.01,
		Rand:         rng,
	})
	require.NoError(t, err)
	return a
}

func TestNewValidation(t *testing.T) {
	env, err := gridworld.New(4, 15)
	require.NoError(t, err)

	t.Run("missing environment", func(t *testing.T) {
		_, err := New(Config{Alpha: 0.1, Gamma: 0.9, EpsilonDecay: 0.995})
		assert.Error(t, err)
	})

	t.Run("bad hyperparameters", func(t *testing.T) {
		for _, cfg := range []Config{
			{Env: env, Alpha: 0, Gamma: 0.9, EpsilonDecay: 0.995},
			{Env: env, Alpha: 0.1, Gamma: 1, EpsilonDecay: 0.995},
			{Env: env, Alpha: 0.1, Gamma: 0.9, Epsilon: 1.5, EpsilonDecay: 0.995},
			{Env: env, Alpha: 0.1, Gamma: 0.9, EpsilonDecay: 0},
		} {
			_, err := New(cfg)
			assert.Error(t, err)
		}
	})

	t.Run("fresh agent state", func(t *testing.T) {
		a := newTestAgent(t, &scriptedRand{})
		assert.Equal(t, StartCell, a.Cell())
		assert.InDelta(t, 0.1, a.Epsilon(), 1e-12)
		assert.False(t, a.IsTerminal())

		for cell := 0; cell < 16; cell++ {
			for _, action := range gridworld.Actions {
				v, err := a.Value(cell, action)
				require.NoError(t, err)
				assert.Zero(t, v)
			}
		}
	})
}

func TestStepRejectsUnknownAction(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	_, err := a.Step(gridworld.Action("teleport"))
	assert.ErrorIs(t, err, gridworld.ErrUnknownAction)

	// Nothing mutated on reject.
	assert.Equal(t, StartCell, a.Cell())
	assert.InDelta(t, 0.1, a.Epsilon(), 1e-12)
	v, err := a.Value(0, gridworld.ActionUp)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestStepAppliesQUpdate(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	// From a zero table, a step-cost move: q = 0 + 0.1*(-0.01 + 0.9*0 - 0).
	res, err := a.Step(gridworld.ActionRight)
	require.NoError(t, err)
	assert.Equal(t, 0, res.PreviousCell)
	assert.Equal(t, 1, res.NextCell)
	assert.Equal(t, gridworld.RewardStep, res.Reward)
	assert.False(t, res.Terminal)
	assert.Equal(t, 1, a.Cell())

	v, err := a.Value(0, gridworld.ActionRight)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*(-0.01), v, 1e-12)

	// Second update from cell 1 must discount the best value at cell 2
	// (still zero), and leave the first entry untouched.
	_, err = a.Step(gridworld.ActionRight)
	require.NoError(t, err)

	v, err = a.Value(1, gridworld.ActionRight)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*(-0.01), v, 1e-12)

	v, err = a.Value(0, gridworld.ActionRight)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*(-0.01), v, 1e-12)
}

func TestStepUpdateUsesBestNextValue(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	// Walk 0 -> 1 -> 2 -> 3 -> 7 -> 11 -> 15 so the final step seeds a
	// goal-driven entry at (11, down).
	path := []gridworld.Action{
		gridworld.ActionRight, gridworld.ActionRight, gridworld.ActionRight,
		gridworld.ActionDown, gridworld.ActionDown, gridworld.ActionDown,
	}
	var last *StepResult
	for _, action := range path {
		res, err := a.Step(action)
		require.NoError(t, err)
		last = res
	}
	require.True(t, last.Terminal)
	require.Equal(t, 15, last.NextCell)

	goalEntry, err := a.Value(11, gridworld.ActionDown)
	require.NoError(t, err)
	assert.InDelta(t, 0.1*gridworld.RewardGoal, goalEntry, 1e-12)

	// Stepping 7 -> 11 now must pull in gamma * that entry.
	a.Reset()
	_, err = a.Step(gridworld.ActionDown) // 0 -> 4
	require.NoError(t, err)
	_, err = a.Step(gridworld.ActionRight) // 4 -> 5
	require.NoError(t, err)
	_, err = a.Step(gridworld.ActionRight) // 5 -> 6
	require.NoError(t, err)
	_, err = a.Step(gridworld.ActionRight) // 6 -> 7
	require.NoError(t, err)

	before, err := a.Value(7, gridworld.ActionDown)
	require.NoError(t, err)

	_, err = a.Step(gridworld.ActionDown) // 7 -> 11
	require.NoError(t, err)

	after, err := a.Value(7, gridworld.ActionDown)
	require.NoError(t, err)
	want := before + 0.1*(gridworld.RewardStep+0.9*goalEntry-before)
	assert.InDelta(t, want, after, 1e-12)
}

func TestChooseAction(t *testing.T) {
	t.Run("explores below epsilon", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.05}, ints: []int{3}}
		a := newTestAgent(t, rng)
		assert.Equal(t, gridworld.ActionLeft, a.ChooseAction())
	})

	t.Run("exploits at or above epsilon", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.1}}
		a := newTestAgent(t, rng)
		// Zero table: tie-break picks the first action in the ordering.
		assert.Equal(t, gridworld.ActionUp, a.ChooseAction())
	})

	t.Run("exploits the learned best action", func(t *testing.T) {
		a := newTestAgent(t, &scriptedRand{floats: []float64{0.99, 0.99}})
		_, err := a.Step(gridworld.ActionUp) // no-op penalty at cell 0
		require.NoError(t, err)
		// Up now scores -0.1*alpha, everything else 0; right wins the tie
		// among the zero entries ahead of down and left... up loses to all.
		assert.Equal(t, gridworld.ActionRight, a.ChooseAction())
	})
}

func TestBestAction(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	t.Run("rejects out-of-range cells", func(t *testing.T) {
		_, err := a.BestAction(-1)
		assert.ErrorIs(t, err, ErrCellOutOfRange)

		_, err = a.BestAction(16)
		assert.ErrorIs(t, err, ErrCellOutOfRange)
	})

	t.Run("idempotent without intervening steps", func(t *testing.T) {
		first, err := a.BestAction(5)
		require.NoError(t, err)
		second, err := a.BestAction(5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("does not require the agent to be on the cell", func(t *testing.T) {
		_, err := a.Step(gridworld.ActionRight) // agent now at 1
		require.NoError(t, err)
		action, err := a.BestAction(14)
		require.NoError(t, err)
		assert.Equal(t, gridworld.ActionUp, action) // zero row, first in order
	})
}

func TestEpsilonDecay(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	prev := a.Epsilon()
	for i := 0; i < 20; i++ {
		_, err := a.Step(gridworld.ActionUp) // wall bump, decay still applies
		require.NoError(t, err)
		eps := a.Epsilon()
		assert.LessOrEqual(t, eps, prev)
		assert.InDelta(t, math.Max(prev*0.995, 0.01), eps, 1e-12)
		prev = eps
	}

	// Drive epsilon to the floor.
	for i := 0; i < 2000; i++ {
		_, err := a.Step(gridworld.ActionUp)
		require.NoError(t, err)
	}
	assert.InDelta(t, 0.01, a.Epsilon(), 1e-12)
}

func TestReset(t *testing.T) {
	a := newTestAgent(t, &scriptedRand{})

	_, err := a.Step(gridworld.ActionRight)
	require.NoError(t, err)
	_, err = a.Step(gridworld.ActionDown)
	require.NoError(t, err)
	require.Equal(t, 5, a.Cell())

	learned, err := a.Value(0, gridworld.ActionRight)
	require.NoError(t, err)
	require.NotZero(t, learned)
	epsBefore := a.Epsilon()

	a.Reset()

	assert.Equal(t, StartCell, a.Cell())

	// Learning survives the episode boundary.
	v, err := a.Value(0, gridworld.ActionRight)
	require.NoError(t, err)
	assert.Equal(t, learned, v)
	assert.Equal(t, epsBefore, a.Epsilon())
}
