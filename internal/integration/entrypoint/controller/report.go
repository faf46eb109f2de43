// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/usecase/report"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
	"github.com/bizportal/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report drafting, archive and delivery endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
	listUseCase     *report.ListReportsUseCase
	getUseCase      *report.GetReportUseCase
	emailUseCase    *report.EmailReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	listUseCase *report.ListReportsUseCase,
	getUseCase *report.GetReportUseCase,
	emailUseCase *report.EmailReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		emailUseCase:    emailUseCase,
	}
}

// Generate handles POST /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingReportFields), "Invalid request body: "+err.Error())
		return
	}

	entrepreneurID, err := uuid.Parse(req.EntrepreneurID)
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingReportFields), "entrepreneur_id must be a valid id")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		EntrepreneurID: entrepreneurID,
		Period:         req.Period,
		GeneratedBy:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGeneratedReportResponse(output))
}

// List handles GET /reports?entrepreneur_id= requests.
func (c *ReportController) List(ctx *gin.Context) {
	entrepreneurID, err := uuid.Parse(ctx.Query("entrepreneur_id"))
	if err != nil {
		badRequest(ctx, string(domainerror.ErrCodeMissingReportFields), "entrepreneur_id query parameter is required")
		return
	}

	reports, err := c.listUseCase.Execute(ctx.Request.Context(), entrepreneurID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportListResponse(reports))
}

// Get handles GET /reports/:id requests.
func (c *ReportController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReportNotFound))
	if !ok {
		return
	}

	r, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(r))
}

// Email handles POST /reports/:id/email requests.
func (c *ReportController) Email(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", string(domainerror.ErrCodeReportNotFound))
	if !ok {
		return
	}

	var req dto.EmailReportRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, string(domainerror.ErrCodeMissingReportFields), "Invalid request body: "+err.Error())
			return
		}
	}

	sentBy := ""
	if claims, ok := middleware.GetClaimsFromContext(ctx); ok {
		sentBy = claims.Email
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), report.EmailReportInput{
		ReportID:       id,
		RecipientEmail: req.RecipientEmail,
		SentBy:         sentBy,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.EmailReportResponse{
		Message:        "Report queued for delivery",
		RecipientEmail: output.RecipientEmail,
	})
}
