package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository(newTestDB(t))
	entrepreneurID := uuid.New()

	draft := entity.ReportDraft{
		Summary:         "A steady month.",
		Highlights:      []string{"Sales up", "New customer, Ama"},
		Recommendations: []string{"Collect receivables"},
		Metrics:         []entity.ReportMetric{{Label: "Net", Value: "1200.00"}},
		Tables: []entity.ReportTable{{
			Title:   "Top customers",
			Columns: []string{"Name", "Amount"},
			Rows:    [][]string{{"Ama", "500.00"}},
		}},
	}
	report := entity.NewReport(entrepreneurID, "2024-03", draft, uuid.New())
	require.NoError(t, repo.Create(ctx, report))

	found, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", found.Period)
	assert.Equal(t, draft.Highlights, found.Draft.Highlights)
	assert.Equal(t, draft.Recommendations, found.Draft.Recommendations)
	assert.Equal(t, draft.Metrics, found.Draft.Metrics)
	assert.Equal(t, draft.Tables, found.Draft.Tables)

	list, err := repo.FindByEntrepreneur(ctx, entrepreneurID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrReportNotFound)
}
