package gridworld

import (
	"errors"
	"fmt"
)

// Action is one of the four directional moves.
type Action string

const (
	ActionUp    Action = "up"
	ActionRight Action = "right"
	ActionDown  Action = "down"
	ActionLeft  Action = "left"
)

// Actions is the fixed action set. The order is significant: it defines the
// action indices of the agent's value table and the tie-break order when two
// actions score equally.
var Actions = []Action{ActionUp, ActionRight, ActionDown, ActionLeft}

// ErrUnknownAction is returned when an action outside the fixed set is given.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction validates a raw action string against the fixed action set.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if a.Index() < 0 {
		return "", fmt.Errorf("%w: %q, choose one of 'up', 'right', 'down', 'left'", ErrUnknownAction, s)
	}
	return a, nil
}

// Index returns the position of the action in the fixed ordering, or -1 if
// the action is not a member of the set.
func (a Action) Index() int {
	for i, known := range Actions {
		if a == known {
			return i
		}
	}
	return -1
}
