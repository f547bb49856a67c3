package i

import (
	"github.com/codebabbler/SemesterSaat/agent"
	"github.com/codebabbler/SemesterSaat/gridworld"
)

// Navigator drives the shared grid-navigation agent.
type Navigator interface {
	// Step performs one agent interaction with the given raw action.
	// Returns an error for actions outside the fixed set, mutating nothing.
	Step(action string) (*agent.StepResult, error)

	// Reset returns the agent to the start cell and reports it. Learned
	// values are kept.
	Reset() int

	// BestAction returns the highest-valued action at the given cell.
	// Returns an error for cells outside the grid.
	BestAction(cell int) (gridworld.Action, error)

	// CurrentCell returns the agent's current cell.
	CurrentCell() int

	// Epsilon returns the agent's current exploration rate.
	Epsilon() float64
}
