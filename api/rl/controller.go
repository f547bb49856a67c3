// Package rlapi handles the grid-navigation learning endpoints.
package rlapi

import (
	"net/http"

	"github.com/codebabbler/SemesterSaat/service/i"
	"github.com/gin-gonic/gin"
)

// NavigationController manages the shared learning agent over HTTP.
type NavigationController struct {
	navigator i.Navigator
}

// NewNavigationController initializes a NavigationController.
func NewNavigationController(n i.Navigator) (*NavigationController, error) {
	return &NavigationController{
		navigator: n,
	}, nil
}

// RegisterPublic registers public routes.
func (nc *NavigationController) RegisterPublic(route *gin.RouterGroup) {
	rl := route.Group("/rl")
	{
		rl.POST("/step", nc.step)
		rl.POST("/best_action", nc.bestAction)
		rl.GET("/state", nc.state)
	}
}

// RegisterProtected registers protected routes.
func (nc *NavigationController) RegisterProtected(route *gin.RouterGroup) {
	rl := route.Group("/rl")
	{
		rl.POST("/reset", nc.reset)
	}
}

// step handles one agent interaction.
func (nc *NavigationController) step(ctx *gin.Context) {
	var request StepRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := nc.navigator.Step(request.Action)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &StepResponse{
		CurrentState: res.PreviousCell,
		Action:       string(res.Action),
		NextState:    res.NextCell,
		Reward:       res.Reward,
		IsTerminal:   res.Terminal,
	}
	ctx.JSON(http.StatusOK, response)
}

// bestAction reports the best-known action at an arbitrary cell.
func (nc *NavigationController) bestAction(ctx *gin.Context) {
	var request BestActionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action, err := nc.navigator.BestAction(*request.State)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &BestActionResponse{
		State:      *request.State,
		BestAction: string(action),
	}
	ctx.JSON(http.StatusOK, response)
}

// state reports the agent's current cell and exploration rate.
func (nc *NavigationController) state(ctx *gin.Context) {
	response := &StateResponse{
		State:   nc.navigator.CurrentCell(),
		Epsilon: nc.navigator.Epsilon(),
	}
	ctx.JSON(http.StatusOK, response)
}

// reset returns the agent to the start cell, keeping its learned values.
func (nc *NavigationController) reset(ctx *gin.Context) {
	cell := nc.navigator.Reset()
	ctx.JSON(http.StatusOK, gin.H{"message": "Agent reset to initial state.", "state": cell})
}
