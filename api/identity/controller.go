package identity

import (
	"net/http"

	"github.com/codebabbler/SemesterSaat/service/i"
	"github.com/gin-gonic/gin"
)

// OperatorController handles HTTP requests for operator authentication.
type OperatorController struct {
	operatorService i.Operator
}

// NewOperatorController creates a new OperatorController.
func NewOperatorController(o i.Operator) *OperatorController {
	return &OperatorController{
		operatorService: o,
	}
}

// RegisterPublic registers public routes.
func (c *OperatorController) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/token", c.issueToken)
	}
}

// RegisterProtected registers privileged routes.
func (c *OperatorController) RegisterProtected(route *gin.RouterGroup) {
}

// issueToken exchanges the operator key for a signed token.
func (c *OperatorController) issueToken(ctx *gin.Context) {
	var request TokenRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.operatorService.IssueToken(request.Key)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &TokenResponse{Token: token})
}
