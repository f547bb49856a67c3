// Package agent implements a tabular Q-learning agent over the gridworld
// environment. The agent owns a dense (cell, action) value table, its own
// current cell, and a decaying exploration rate. It is not safe for
// concurrent use; callers serialize access.
package agent

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/codebabbler/SemesterSaat/gridworld"
)

// StartCell is where the agent begins and where Reset returns it to.
const StartCell = 0

// ErrCellOutOfRange is returned when a queried cell index is outside the grid.
var ErrCellOutOfRange = errors.New("cell out of range")

// Rand is the source of randomness for the exploration policy. Tests inject
// a scripted implementation to make action selection deterministic.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Config holds the agent's construction parameters.
type Config struct {
	Env *gridworld.Environment

	Alpha   float64 // learning rate
	Gamma   float64 // discount factor
	Epsilon float64 // initial exploration rate

	EpsilonDecay float64 // multiplicative decay applied per step
	EpsilonMin   float64 // exploration rate floor

	// Rand defaults to a time-seeded math/rand source when nil.
	Rand Rand
}

// Agent is a tabular Q-learning agent.
type Agent struct {
	env    *gridworld.Environment
	values [][]float64 // [cell][action index]

	alpha        float64
	gamma        float64
	epsilon      float64
	epsilonDecay float64
	epsilonMin   float64

	cell int
	rng  Rand
}

// StepResult describes one completed interaction.
type StepResult struct {
	PreviousCell int
	Action       gridworld.Action
	NextCell     int
	Reward       float64
	Terminal     bool
}

// New creates an Agent with a zero-initialized value table, positioned at
// StartCell.
func New(cfg Config) (*Agent, error) {
	if cfg.Env == nil {
		return nil, errors.New("agent requires an environment")
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		return nil, fmt.Errorf("invalid learning rate %v, must be in (0, 1]", cfg.Alpha)
	}
	if cfg.Gamma < 0 || cfg.Gamma >= 1 {
		return nil, fmt.Errorf("invalid discount factor %v, must be in [0, 1)", cfg.Gamma)
	}
	if cfg.Epsilon < 0 || cfg.Epsilon > 1 {
		return nil, fmt.Errorf("invalid exploration rate %v, must be in [0, 1]", cfg.Epsilon)
	}
	if cfg.EpsilonDecay <= 0 || cfg.EpsilonDecay > 1 {
		return nil, fmt.Errorf("invalid exploration decay %v, must be in (0, 1]", cfg.EpsilonDecay)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	values := make([][]float64, cfg.Env.Size())
	for i := range values {
		values[i] = make([]float64, len(gridworld.Actions))
	}

	return &Agent{
		env:          cfg.Env,
		values:       values,
		alpha:        cfg.Alpha,
		gamma:        cfg.Gamma,
		epsilon:      cfg.Epsilon,
		epsilonDecay: cfg.EpsilonDecay,
		epsilonMin:   cfg.EpsilonMin,
		cell:         StartCell,
		rng:          rng,
	}, nil
}

// Step performs one full interaction: validate the action, transition via
// the environment, apply the Q-learning update, advance the current cell,
// and decay the exploration rate. A rejected action mutates nothing.
func (a *Agent) Step(action gridworld.Action) (*StepResult, error) {
	idx := action.Index()
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", gridworld.ErrUnknownAction, string(action))
	}

	prev := a.cell
	out := a.env.Step(prev, action)

	a.update(prev, idx, out.Reward, out.NextCell)
	a.cell = out.NextCell
	a.epsilon = math.Max(a.epsilon*a.epsilonDecay, a.epsilonMin)

	return &StepResult{
		PreviousCell: prev,
		Action:       action,
		NextCell:     out.NextCell,
		Reward:       out.Reward,
		Terminal:     out.Terminal,
	}, nil
}

// update applies one temporal-difference step toward the Bellman-optimal
// value:
//
//	q[c][a] += alpha * (r + gamma*max(q[next]) - q[c][a])
func (a *Agent) update(cell, actionIdx int, reward float64, next int) {
	bestNext := maxValue(a.values[next])
	q := a.values[cell][actionIdx]
	a.values[cell][actionIdx] = q + a.alpha*(reward+a.gamma*bestNext-q)
}

// ChooseAction picks the next action with an epsilon-greedy policy: with
// probability epsilon a uniformly random action, otherwise the best-valued
// action at the current cell. Does not mutate the value table.
func (a *Agent) ChooseAction() gridworld.Action {
	if a.rng.Float64() < a.epsilon {
		return gridworld.Actions[a.rng.Intn(len(gridworld.Actions))]
	}
	return a.greedyAction(a.cell)
}

// BestAction returns the highest-valued action at an arbitrary cell. Ties go
// to the action occurring first in the fixed ordering.
func (a *Agent) BestAction(cell int) (gridworld.Action, error) {
	if cell < 0 || cell >= a.env.Size() {
		return "", fmt.Errorf("%w: %d, must be in [0, %d)", ErrCellOutOfRange, cell, a.env.Size())
	}
	return a.greedyAction(cell), nil
}

func (a *Agent) greedyAction(cell int) gridworld.Action {
	row := a.values[cell]
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return gridworld.Actions[best]
}

// Value returns the table entry for (cell, action).
func (a *Agent) Value(cell int, action gridworld.Action) (float64, error) {
	if cell < 0 || cell >= a.env.Size() {
		return 0, fmt.Errorf("%w: %d, must be in [0, %d)", ErrCellOutOfRange, cell, a.env.Size())
	}
	idx := action.Index()
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", gridworld.ErrUnknownAction, string(action))
	}
	return a.values[cell][idx], nil
}

// Reset returns the agent to StartCell. The value table and exploration rate
// are kept: a reset is an episode boundary, not a relearning boundary.
func (a *Agent) Reset() {
	a.cell = StartCell
}

// Cell returns the agent's current cell.
func (a *Agent) Cell() int {
	return a.cell
}

// Epsilon returns the current exploration rate.
func (a *Agent) Epsilon() float64 {
	return a.epsilon
}

// IsTerminal reports whether the agent currently stands on the goal cell.
func (a *Agent) IsTerminal() bool {
	return a.cell == a.env.Goal()
}

func maxValue(row []float64) float64 {
	best := row[0]
	for _, v := range row[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
