package service

import (
	"testing"

	"github.com/codebabbler/SemesterSaat/agent"
	"github.com/codebabbler/SemesterSaat/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger satisfies i.Logger for tests.
type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	env, err := gridworld.New(4, 15)
	require.NoError(t, err)

	learner, err := agent.New(agent.Config{
		Env:          env,
		Alpha:        0.1,
		Gamma:        0.9,
		Epsilon:      0.1,
		EpsilonDecay: 0.995,
		EpsilonMin:   0.01,
	})
	require.NoError(t, err)

	nav, err := NewNavigator(learner, nopLogger{})
	require.NoError(t, err)
	return nav
}

func TestNavigatorStep(t *testing.T) {
	nav := newTestNavigator(t)

	t.Run("rejects raw actions outside the set", func(t *testing.T) {
		_, err := nav.Step("sideways")
		assert.ErrorIs(t, err, gridworld.ErrUnknownAction)
		assert.Equal(t, 0, nav.CurrentCell())
	})

	t.Run("performs a full interaction", func(t *testing.T) {
		res, err := nav.Step("right")
		require.NoError(t, err)
		assert.Equal(t, 0, res.PreviousCell)
		assert.Equal(t, 1, res.NextCell)
		assert.Equal(t, gridworld.RewardStep, res.Reward)
		assert.False(t, res.Terminal)
		assert.Equal(t, 1, nav.CurrentCell())
		assert.Less(t, nav.Epsilon(), 0.1)
	})
}

func TestNavigatorReset(t *testing.T) {
	nav := newTestNavigator(t)

	_, err := nav.Step("right")
	require.NoError(t, err)
	require.Equal(t, 1, nav.CurrentCell())

	assert.Equal(t, agent.StartCell, nav.Reset())
	assert.Equal(t, agent.StartCell, nav.CurrentCell())
}

func TestNavigatorBestAction(t *testing.T) {
	nav := newTestNavigator(t)

	t.Run("rejects out-of-range cells", func(t *testing.T) {
		_, err := nav.BestAction(16)
		assert.ErrorIs(t, err, agent.ErrCellOutOfRange)
	})

	t.Run("answers for any valid cell", func(t *testing.T) {
		action, err := nav.BestAction(7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, action.Index(), 0)
	})
}
