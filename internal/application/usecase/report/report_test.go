package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/application/adapter/fake"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func income(entrepreneurID uuid.UUID, date string, amount int64) *entity.Transaction {
	d, _ := entity.ParseLedgerDate(date)
	return entity.NewTransaction(entrepreneurID, entity.TransactionTypeIncome, d, decimal.NewFromInt(amount),
		entity.PaymentMethodCash, nil, "Kofi", "Kenkey", "")
}

type fixture struct {
	ledger  *fake.Ledger
	e       *entity.Entrepreneur
	drafter *fake.Drafter
	cache   *fake.ReportCache
	reports *fake.Reports
	uc      *GenerateReportUseCase
}

func newFixture(email string) *fixture {
	f := &fixture{
		ledger: fake.NewLedger(),
		e:      entity.NewEntrepreneur("Akua", "Akua's Kitchen", email, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		drafter: &fake.Drafter{
			Available: true,
			Result: &entity.ReportDraft{
				Summary:    "A steady month.",
				Highlights: []string{"Sales grew"},
				Metrics:    []entity.ReportMetric{{Label: "Income", Value: "GHS 300.00"}},
			},
		},
		cache:   fake.NewReportCache(),
		reports: &fake.Reports{},
	}
	f.ledger.Seed([]*entity.Transaction{
		income(f.e.ID, "2024-03-02", 100),
		income(f.e.ID, "2024-03-15", 200),
		income(f.e.ID, "2024-04-01", 900),
	}, []*entity.Entrepreneur{f.e})
	f.uc = NewGenerateReportUseCase(f.ledger.Entrepreneurs(), f.ledger, f.reports, f.drafter, f.cache, time.Hour, 5)
	return f
}

func TestGenerateReport_DraftsAndArchives(t *testing.T) {
	f := newFixture("akua@example.com")
	generatedBy := uuid.New()

	out, err := f.uc.Execute(context.Background(), GenerateReportInput{
		EntrepreneurID: f.e.ID,
		Period:         "2024-03",
		GeneratedBy:    generatedBy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cached {
		t.Error("first draft must not come from the cache")
	}
	if out.PeriodLabel != "March 2024" {
		t.Errorf("expected label March 2024, got %q", out.PeriodLabel)
	}
	if !out.Summary.Income.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected income 300, got %s", out.Summary.Income)
	}
	if out.Report.GeneratedBy != generatedBy || out.Report.Period != "2024-03" {
		t.Errorf("unexpected report metadata: %+v", out.Report)
	}

	if f.drafter.Calls() != 1 {
		t.Fatalf("expected 1 drafting call, got %d", f.drafter.Calls())
	}
	if got := len(f.drafter.Requests[0].Transactions); got != 2 {
		t.Errorf("expected the drafter to see 2 transactions, got %d", got)
	}

	archived, err := f.reports.FindByEntrepreneur(context.Background(), f.e.ID)
	if err != nil || len(archived) != 1 {
		t.Fatalf("expected 1 archived report, got %d (%v)", len(archived), err)
	}
	if archived[0].Draft.Summary != "A steady month." {
		t.Errorf("unexpected archived summary %q", archived[0].Draft.Summary)
	}
}

func TestGenerateReport_ReusesCachedDraft(t *testing.T) {
	f := newFixture("")
	input := GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2024-03"}

	if _, err := f.uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := f.uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Cached {
		t.Error("expected the second draft to come from the cache")
	}
	if f.drafter.Calls() != 1 {
		t.Errorf("expected 1 drafting call, got %d", f.drafter.Calls())
	}

	// A new transaction in the period changes the slice.
	if err := f.ledger.Save(context.Background(), income(f.e.ID, "2024-03-20", 50)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err = f.uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cached || f.drafter.Calls() != 2 {
		t.Errorf("expected a fresh draft, cached=%v calls=%d", out.Cached, f.drafter.Calls())
	}
}

func TestGenerateReport_Failures(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		f := newFixture("")
		_, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: f.e.ID, Period: "March"})
		if !errors.Is(err, domainerror.ErrInvalidExplicitPeriod) {
			t.Errorf("expected ErrInvalidExplicitPeriod, got %v", err)
		}
	})

	t.Run("unknown entrepreneur", func(t *testing.T) {
		f := newFixture("")
		_, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: uuid.New(), Period: "2024-03"})
		if !errors.Is(err, domainerror.ErrEntrepreneurNotFound) {
			t.Errorf("expected ErrEntrepreneurNotFound, got %v", err)
		}
	})

	t.Run("empty period", func(t *testing.T) {
		f := newFixture("")
		_, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2023"})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeNoTransactions {
			t.Errorf("expected ErrCodeNoTransactions, got %v", err)
		}
		if f.drafter.Calls() != 0 {
			t.Error("drafter must not be called for an empty period")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		f := newFixture("")
		f.drafter.Available = false
		_, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2024"})
		if !errors.Is(err, domainerror.ErrReportServiceNotConfigured) {
			t.Errorf("expected ErrReportServiceNotConfigured, got %v", err)
		}
	})

	t.Run("drafting failure is surfaced once", func(t *testing.T) {
		f := newFixture("")
		f.drafter.Err = domainerror.NewReportError(domainerror.ErrCodeReportRateLimited, "rate limited", nil)
		_, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2024"})
		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeReportRateLimited {
			t.Errorf("expected rate-limited ReportError, got %v", err)
		}
		if f.drafter.Calls() != 1 {
			t.Errorf("expected exactly 1 drafting attempt, got %d", f.drafter.Calls())
		}
		archived, _ := f.reports.FindByEntrepreneur(context.Background(), f.e.ID)
		if len(archived) != 0 {
			t.Error("a failed draft must not be archived")
		}
	})
}

func TestEmailReport(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the entrepreneur address", func(t *testing.T) {
		f := newFixture("akua@example.com")
		out, err := f.uc.Execute(ctx, GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2024-03"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		emails := &fake.EmailService{}
		uc := NewEmailReportUseCase(f.reports, f.ledger.Entrepreneurs(), emails)

		sent, err := uc.Execute(ctx, EmailReportInput{ReportID: out.Report.ID, SentBy: "Ama"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent.RecipientEmail != "akua@example.com" {
			t.Errorf("unexpected recipient %q", sent.RecipientEmail)
		}
		if len(emails.ReportDeliveries) != 1 {
			t.Fatalf("expected 1 queued delivery, got %d", len(emails.ReportDeliveries))
		}
		queued := emails.ReportDeliveries[0]
		if queued.ReportID != out.Report.ID {
			t.Errorf("delivery not linked to report %s: %s", out.Report.ID, queued.ReportID)
		}
		if queued.PeriodLabel != "March 2024" || queued.EntrepreneurName != "Akua's Kitchen" {
			t.Errorf("unexpected delivery %+v", queued)
		}
		if len(queued.Draft.Metrics) != 1 || queued.Draft.Metrics[0].Value != "GHS 300.00" {
			t.Errorf("unexpected metrics %+v", queued.Draft.Metrics)
		}
	})

	t.Run("missing recipient", func(t *testing.T) {
		f := newFixture("")
		out, err := f.uc.Execute(ctx, GenerateReportInput{EntrepreneurID: f.e.ID, Period: "2024-03"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		emails := &fake.EmailService{}
		uc := NewEmailReportUseCase(f.reports, f.ledger.Entrepreneurs(), emails)

		_, err = uc.Execute(ctx, EmailReportInput{ReportID: out.Report.ID})
		if !errors.Is(err, domainerror.ErrMissingRecipient) {
			t.Errorf("expected ErrMissingRecipient, got %v", err)
		}
		if len(emails.ReportDeliveries) != 0 {
			t.Error("nothing should be queued")
		}
	})

	t.Run("unknown report", func(t *testing.T) {
		f := newFixture("")
		uc := NewEmailReportUseCase(f.reports, f.ledger.Entrepreneurs(), &fake.EmailService{})
		_, err := uc.Execute(ctx, EmailReportInput{ReportID: uuid.New()})
		if !errors.Is(err, domainerror.ErrReportNotFound) {
			t.Errorf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestListReports(t *testing.T) {
	f := newFixture("")
	for _, period := range []string{"2024-03", "2024-04"} {
		if _, err := f.uc.Execute(context.Background(), GenerateReportInput{EntrepreneurID: f.e.ID, Period: period}); err != nil {
			t.Fatalf("generate %s: %v", period, err)
		}
	}

	reports, err := NewListReportsUseCase(f.reports).Execute(context.Background(), f.e.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	got, err := NewGetReportUseCase(f.reports).Execute(context.Background(), reports[0].ID)
	if err != nil || got.ID != reports[0].ID {
		t.Errorf("expected to load report %s, got %v (%v)", reports[0].ID, got, err)
	}
}
