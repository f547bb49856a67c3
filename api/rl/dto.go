// Package rlapi provides structures and utilities for the grid-navigation endpoints.
package rlapi

// StepRequest carries the action for one agent step.
type StepRequest struct {
	Action string `json:"action" binding:"required"`
}

// StepResponse describes the completed step.
type StepResponse struct {
	CurrentState int     `json:"current_state"`
	Action       string  `json:"action"`
	NextState    int     `json:"next_state"`
	Reward       float64 `json:"reward"`
	IsTerminal   bool    `json:"is_terminal"`
}

// BestActionRequest asks for the best-known action at a cell. State is a
// pointer so cell 0 passes the required binding.
type BestActionRequest struct {
	State *int `json:"state" binding:"required"`
}

// BestActionResponse carries the best-known action at the requested cell.
type BestActionResponse struct {
	State      int    `json:"state"`
	BestAction string `json:"best_action"`
}

// StateResponse reports the agent's current position and exploration rate.
type StateResponse struct {
	State   int     `json:"state"`
	Epsilon float64 `json:"epsilon"`
}
