// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizportal/backend/internal/application/usecase/entrepreneur"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
)

// EntrepreneurController handles entrepreneur and goal endpoints.
type EntrepreneurController struct {
	listUseCase            *entrepreneur.ListEntrepreneursUseCase
	getUseCase             *entrepreneur.GetEntrepreneurUseCase
	createUseCase          *entrepreneur.CreateEntrepreneurUseCase
	updateUseCase          *entrepreneur.UpdateEntrepreneurUseCase
	deleteUseCase          *entrepreneur.DeleteEntrepreneurUseCase
	summaryUseCase         *entrepreneur.GetEntrepreneurSummaryUseCase
	addGoalUseCase         *entrepreneur.AddGoalUseCase
	deleteGoalUseCase      *entrepreneur.DeleteGoalUseCase
	getGoalProgressUseCase *entrepreneur.GetGoalProgressUseCase
}

// NewEntrepreneurController creates a new entrepreneur controller instance.
func NewEntrepreneurController(
	listUseCase *entrepreneur.ListEntrepreneursUseCase,
	getUseCase *entrepreneur.GetEntrepreneurUseCase,
	createUseCase *entrepreneur.CreateEntrepreneurUseCase,
	updateUseCase *entrepreneur.UpdateEntrepreneurUseCase,
	deleteUseCase *entrepreneur.DeleteEntrepreneurUseCase,
	summaryUseCase *entrepreneur.GetEntrepreneurSummaryUseCase,
	addGoalUseCase *entrepreneur.AddGoalUseCase,
	deleteGoalUseCase *entrepreneur.DeleteGoalUseCase,
	getGoalProgressUseCase *entrepreneur.GetGoalProgressUseCase,
) *EntrepreneurController {
	return &EntrepreneurController{
		listUseCase:            listUseCase,
		getUseCase:             getUseCase,
		createUseCase:          createUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		summaryUseCase:         summaryUseCase,
		addGoalUseCase:         addGoalUseCase,
		deleteGoalUseCase:      deleteGoalUseCase,
		getGoalProgressUseCase: getGoalProgressUseCase,
	}
}

// List handles GET /entrepreneurs requests.
func (c *EntrepreneurController) List(ctx *gin.Context) {
	entrepreneurs, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntrepreneurResponses(entrepreneurs))
}

// Get handles GET /entrepreneurs/:id requests.
func (c *EntrepreneurController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	e, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntrepreneurResponse(e))
}

// Create handles POST /entrepreneurs requests.
func (c *EntrepreneurController) Create(ctx *gin.Context) {
	var req dto.CreateEntrepreneurRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingEntrepreneurData), "Invalid request body: "+err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), entrepreneur.CreateEntrepreneurInput{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntrepreneurResponse(output.Entrepreneur))
}

// Update handles PUT /entrepreneurs/:id requests.
func (c *EntrepreneurController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	var req dto.UpdateEntrepreneurRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingEntrepreneurData), "Invalid request body: "+err.Error())
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), entrepreneur.UpdateEntrepreneurInput{
		ID:           id,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		StartDate:    req.StartDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntrepreneurResponse(output.Entrepreneur))
}

// Delete handles DELETE /entrepreneurs/:id requests.
// The entrepreneur's goals and transactions are removed with it.
func (c *EntrepreneurController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), entrepreneur.DeleteEntrepreneurInput{ID: id})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteEntrepreneurResponse{DeletedTransactions: output.DeletedTransactions})
}

// Summary handles GET /entrepreneurs/:id/summary?range= requests.
func (c *EntrepreneurController) Summary(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), entrepreneur.GetEntrepreneurSummaryInput{
		ID:    id,
		Range: ctx.Query("range"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntrepreneurSummaryResponse(output))
}

// AddGoal handles POST /entrepreneurs/:id/goals requests.
func (c *EntrepreneurController) AddGoal(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	var req dto.AddGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingGoalFields), "Invalid request body: "+err.Error())
		return
	}

	output, err := c.addGoalUseCase.Execute(ctx.Request.Context(), entrepreneur.AddGoalInput{
		EntrepreneurID: id,
		Title:          req.Title,
		Type:           req.Type,
		TargetValue:    req.TargetValue,
		TargetDate:     req.TargetDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalWithProgressResponses([]entrepreneur.GoalWithProgress{output.Goal})[0])
}

// DeleteGoal handles DELETE /entrepreneurs/:id/goals/:goalId requests.
func (c *EntrepreneurController) DeleteGoal(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "goalId", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), entrepreneur.DeleteGoalInput{
		EntrepreneurID: id,
		GoalID:         goalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GoalProgress handles GET /entrepreneurs/:id/goals/progress requests.
func (c *EntrepreneurController) GoalProgress(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeEntrepreneurNotFound))
	if !ok {
		return
	}

	goals, err := c.getGoalProgressUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalWithProgressResponses(goals))
}
