// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/application/usecase/ledger"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/entrypoint/dto"
	"github.com/bizportal/backend/internal/integration/entrypoint/middleware"
)

const defaultHeartbeat = 25 * time.Second

// LedgerController streams live collection snapshots as Server-Sent Events.
type LedgerController struct {
	feed      *ledger.Feed
	heartbeat time.Duration
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(feed *ledger.Feed) *LedgerController {
	return &LedgerController{feed: feed, heartbeat: defaultHeartbeat}
}

// Stream handles GET /ledger/:collection/stream requests. Every event carries
// the full collection. The users collection is restricted to administrators.
func (c *LedgerController) Stream(ctx *gin.Context) {
	collection := adapter.LedgerCollection(ctx.Param("collection"))
	if collection == adapter.CollectionUsers {
		claims, ok := middleware.GetClaimsFromContext(ctx)
		if !ok || claims.Role != entity.UserRoleAdmin {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Administrator role required",
				Code:  string(domainerror.ErrCodeAdminRequired),
			})
			return
		}
	}

	snapshots, err := c.feed.Subscribe(ctx.Request.Context(), collection)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(c.heartbeat)
	defer heartbeat.Stop()

	ctx.Stream(func(io.Writer) bool {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				return false
			}
			ctx.SSEvent("snapshot", dto.ToSnapshotResponse(snapshot))
			return true
		case <-heartbeat.C:
			ctx.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}
