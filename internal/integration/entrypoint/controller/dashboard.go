// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/usecase/dashboard"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase   *dashboard.GetDashboardUseCase
	getChartSeriesUseCase *dashboard.GetChartSeriesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getChartSeriesUseCase *dashboard.GetChartSeriesUseCase,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase:   getDashboardUseCase,
		getChartSeriesUseCase: getChartSeriesUseCase,
	}
}

// Get handles GET /dashboard?range= requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		Range: ctx.DefaultQuery("range", dashboard.DefaultRange),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetChart handles GET /dashboard/chart?range=&entrepreneur_id= requests.
func (c *DashboardController) GetChart(ctx *gin.Context) {
	input := dashboard.GetChartSeriesInput{
		Range: ctx.DefaultQuery("range", dashboard.DefaultRange),
	}
	if raw := ctx.Query("entrepreneur_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, string(domainerror.ErrCodeMissingEntrepreneurRef), "entrepreneur_id must be a valid id")
			return
		}
		input.EntrepreneurID = &id
	}

	output, err := c.getChartSeriesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartSeriesResponse(output))
}
