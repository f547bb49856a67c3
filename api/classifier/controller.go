// Package classifierapi handles the expense-note classification endpoints.
package classifierapi

import (
	"context"
	"net/http"
	"time"

	"github.com/codebabbler/SemesterSaat/service/i"
	"github.com/gin-gonic/gin"
)

// ClassifierController manages classification and feedback requests.
type ClassifierController struct {
	categorizer i.Categorizer
}

// NewClassifierController initializes a ClassifierController.
func NewClassifierController(c i.Categorizer) (*ClassifierController, error) {
	return &ClassifierController{
		categorizer: c,
	}, nil
}

// RegisterPublic registers public routes.
func (cc *ClassifierController) RegisterPublic(route *gin.RouterGroup) {
	classifier := route.Group("/classifier")
	{
		classifier.POST("/predict", cc.predict)
		classifier.POST("/feedback", cc.feedback)
	}
}

// RegisterProtected registers protected routes.
func (cc *ClassifierController) RegisterProtected(route *gin.RouterGroup) {
	classifier := route.Group("/classifier")
	{
		classifier.POST("/retrain", cc.retrain)
	}
}

// predict classifies an expense note.
func (cc *ClassifierController) predict(ctx *gin.Context) {
	var request PredictRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, confidence, err := cc.categorizer.Predict(request.Text)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &PredictResponse{
		Category:   category,
		Confidence: confidence,
	}
	ctx.JSON(http.StatusOK, response)
}

// feedback records a labeled example; the service may retrain as a result.
func (cc *ClassifierController) feedback(ctx *gin.Context) {
	var request FeedbackRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := cc.categorizer.Feedback(timeoutCtx, request.Text, request.Category); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"message": "Feedback recorded."})
}

// retrain forces a rebuild of the model from the full corpus.
func (cc *ClassifierController) retrain(ctx *gin.Context) {
	timeoutCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	if err := cc.categorizer.Retrain(timeoutCtx); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Classifier retrained."})
}
