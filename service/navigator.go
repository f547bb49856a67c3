package service

import (
	"fmt"
	"sync"

	"github.com/codebabbler/SemesterSaat/agent"
	"github.com/codebabbler/SemesterSaat/gridworld"
	"github.com/codebabbler/SemesterSaat/service/i"
)

// Navigator owns the one process-wide learning agent and serializes access
// to it. The agent core is deliberately unsynchronized, so every interaction
// runs under the navigator's lock to keep the read-transition-update-advance
// sequence indivisible against concurrent requests.
type Navigator struct {
	mu     sync.Mutex
	agent  *agent.Agent
	logger i.Logger
}

// NewNavigator creates a Navigator around the given agent.
func NewNavigator(a *agent.Agent, logger i.Logger) (*Navigator, error) {
	if a == nil {
		return nil, fmt.Errorf("navigator requires an agent")
	}
	return &Navigator{agent: a, logger: logger}, nil
}

// Step performs one agent interaction with the given raw action.
func (n *Navigator) Step(action string) (*agent.StepResult, error) {
	parsed, err := gridworld.ParseAction(action)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	res, err := n.agent.Step(parsed)
	if err != nil {
		return nil, err
	}

	if res.Terminal {
		n.logger.Info(fmt.Sprintf("agent reached the goal: %d -> %d via %s", res.PreviousCell, res.NextCell, res.Action))
	}
	return res, nil
}

// Reset returns the agent to the start cell, keeping its learned values.
func (n *Navigator) Reset() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.agent.Reset()
	n.logger.Info("agent reset to the start cell")
	return n.agent.Cell()
}

// BestAction returns the highest-valued action at the given cell.
func (n *Navigator) BestAction(cell int) (gridworld.Action, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.agent.BestAction(cell)
}

// CurrentCell returns the agent's current cell.
func (n *Navigator) CurrentCell() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.agent.Cell()
}

// Epsilon returns the agent's current exploration rate.
func (n *Navigator) Epsilon() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.agent.Epsilon()
}
