// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
)

// handleError writes the typed domain error carried by err, or a generic 500.
func handleError(ctx *gin.Context, err error) {
	status, code, message := classify(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
	}
	ctx.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}

func classify(err error) (int, string, string) {
	var (
		txErr    *domainerror.TransactionError
		anlErr   *domainerror.AnalyticsError
		entErr   *domainerror.EntrepreneurError
		goalErr  *domainerror.GoalError
		rptErr   *domainerror.ReportError
		authErr  *domainerror.AuthError
		emailErr *domainerror.EmailError
	)

	switch {
	case errors.As(err, &txErr):
		status := http.StatusBadRequest
		if txErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		return status, string(txErr.Code), txErr.Message
	case errors.As(err, &anlErr):
		status := http.StatusBadRequest
		if anlErr.Code == domainerror.ErrCodeAnalyticsInternalError {
			status = http.StatusInternalServerError
		}
		return status, string(anlErr.Code), anlErr.Message
	case errors.As(err, &entErr):
		status := http.StatusBadRequest
		if entErr.Code == domainerror.ErrCodeEntrepreneurNotFound {
			status = http.StatusNotFound
		}
		return status, string(entErr.Code), entErr.Message
	case errors.As(err, &goalErr):
		status := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		return status, string(goalErr.Code), goalErr.Message
	case errors.As(err, &rptErr):
		return reportStatus(rptErr.Code), string(rptErr.Code), rptErr.Message
	case errors.As(err, &authErr):
		return authStatus(authErr.Code), string(authErr.Code), authErr.Message
	case errors.As(err, &emailErr):
		status := http.StatusInternalServerError
		switch emailErr.Code {
		case domainerror.ErrCodeMissingRecipient:
			status = http.StatusUnprocessableEntity
		case domainerror.ErrCodeEmailJobNotFound:
			status = http.StatusNotFound
		}
		return status, string(emailErr.Code), emailErr.Message
	}

	return http.StatusInternalServerError, "", "An internal error occurred"
}

func reportStatus(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoTransactions:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingReportFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeReportRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeReportTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeAdminRequired:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

// badRequest writes a 400 for an unparseable body or parameter.
func badRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Code: code})
}

// pathID parses a UUID path parameter, writing a 404 when malformed.
func pathID(ctx *gin.Context, name string, notFoundCode string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "resource not found",
			Code:  notFoundCode,
		})
		return uuid.Nil, false
	}
	return id, true
}
