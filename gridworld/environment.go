package gridworld

import "fmt"

// Reward values for the three transition outcomes.
const (
	// RewardNoOp is given when a move is blocked by a boundary and the cell
	// does not change. It is heavier than the step cost to discourage
	// wall-bumping.
	RewardNoOp = -0.1

	// RewardGoal is given when the move lands on the goal cell.
	RewardGoal = 1.0

	// RewardStep is the per-step cost of every other move, encouraging
	// shortest paths.
	RewardStep = -0.01
)

const maxSide = 64

// Outcome is the result of a single transition.
type Outcome struct {
	NextCell int
	Reward   float64
	Terminal bool
}

// Environment is a square grid with a designated goal cell. It is configured
// once and never mutated; Step is a pure function of its arguments.
type Environment struct {
	side int
	goal int
}

// New creates an Environment with the given side length and goal cell index.
func New(side, goal int) (*Environment, error) {
	if side < 2 || side > maxSide {
		return nil, fmt.Errorf("invalid grid side %d, must be in [2, %d]", side, maxSide)
	}
	if goal < 0 || goal >= side*side {
		return nil, fmt.Errorf("invalid goal cell %d, must be in [0, %d)", goal, side*side)
	}
	return &Environment{side: side, goal: goal}, nil
}

// Side returns the grid side length.
func (e *Environment) Side() int {
	return e.side
}

// Size returns the number of cells in the grid.
func (e *Environment) Size() int {
	return e.side * e.side
}

// Goal returns the goal cell index.
func (e *Environment) Goal() int {
	return e.goal
}

// Step computes the transition from the given cell under the given action.
// Moves that would cross the grid boundary leave the cell unchanged. An
// action outside the fixed set is treated as a no-op; callers are expected
// to have validated it with ParseAction already.
//
// The no-op penalty takes precedence over the goal reward: a blocked move
// while already standing on the goal cell yields RewardNoOp, with Terminal
// still true. Reconciling that would change observable behavior, so the
// precedence is kept as is.
func (e *Environment) Step(cell int, action Action) Outcome {
	row, col := cell/e.side, cell%e.side

	next := cell
	switch {
	case action == ActionUp && row > 0:
		next = cell - e.side
	case action == ActionRight && col < e.side-1:
		next = cell + 1
	case action == ActionDown && row < e.side-1:
		next = cell + e.side
	case action == ActionLeft && col > 0:
		next = cell - 1
	}

	var reward float64
	switch {
	case next == cell:
		reward = RewardNoOp
	case next == e.goal:
		reward = RewardGoal
	default:
		reward = RewardStep
	}

	return Outcome{
		NextCell: next,
		Reward:   reward,
		Terminal: next == e.goal,
	}
}
