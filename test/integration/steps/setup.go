//go:build integration

package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/adapters"
	"github.com/bizportal/backend/internal/integration/persistence"
)

func registerSetupSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the API server is running$`, t.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, t.todayIs)

	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, t.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as (admin|staff) "([^"]*)"$`, t.iAmLoggedInAs)
	ctx.Given(`^the header is empty$`, t.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, t.theHeaderContainsTheKeyWith)

	ctx.Given(`^an entrepreneur "([^"]*)" started on "([^"]*)"$`, t.anEntrepreneurStartedOn)
	ctx.Given(`^an entrepreneur "([^"]*)" with email "([^"]*)" started on "([^"]*)"$`, t.anEntrepreneurWithEmailStartedOn)
	ctx.Given(`^"([^"]*)" has the following transactions:$`, t.hasTheFollowingTransactions)

	ctx.Given(`^the report drafter writes "([^"]*)"$`, t.theReportDrafterWrites)
	ctx.Given(`^the report drafter is not configured$`, t.theReportDrafterIsNotConfigured)
	ctx.Given(`^the report drafter is rate limited$`, t.theReportDrafterIsRateLimited)
}

func (t *testContext) todayIs(date string) error {
	day, err := entity.ParseLedgerDate(date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) createUser(email, password string, role entity.UserRole) (*entity.User, error) {
	hash, err := adapters.NewBcryptHasherWithCost(4).Hash(password)
	if err != nil {
		return nil, err
	}
	user := entity.NewUser(email, strings.Split(email, "@")[0], hash, role)
	if err := persistence.NewUserRepository(t.db.DbConn).Create(context.Background(), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	_, err := t.createUser(email, password, entity.UserRoleStaff)
	return err
}

func (t *testContext) iAmLoggedInAs(role, email string) error {
	user, err := t.createUser(email, "DefaultPass123!", entity.UserRole(role))
	if err != nil {
		return err
	}
	token, err := t.tokens.GenerateAccessToken(context.Background(), user)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token.Token
	t.currentUserID = user.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) anEntrepreneurStartedOn(name, startDate string) error {
	return t.anEntrepreneurWithEmailStartedOn(name, "", startDate)
}

func (t *testContext) anEntrepreneurWithEmailStartedOn(name, email, startDate string) error {
	day, err := entity.ParseLedgerDate(startDate)
	if err != nil {
		return err
	}
	e := entity.NewEntrepreneur(name, name+" Ventures", email, "", day)
	if err := persistence.NewEntrepreneurRepository(t.db.DbConn).Save(context.Background(), e); err != nil {
		return err
	}
	t.names[name] = e.ID
	return nil
}

// hasTheFollowingTransactions reads a table with the columns
// type | date | amount | paid_status | customer | category.
func (t *testContext) hasTheFollowingTransactions(name string, table *godog.Table) error {
	entrepreneurID, ok := t.names[name]
	if !ok {
		return fmt.Errorf("unknown entrepreneur %q", name)
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table has no rows")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	value := func(row *messages.PickleTableRow, column string) string {
		if i, ok := columns[column]; ok {
			return strings.TrimSpace(row.Cells[i].Value)
		}
		return ""
	}

	repo := persistence.NewTransactionRepository(t.db.DbConn)
	for _, row := range table.Rows[1:] {
		date, err := entity.ParseLedgerDate(value(row, "date"))
		if err != nil {
			return err
		}
		amount, err := entity.ParseAmount(value(row, "amount"))
		if err != nil {
			return err
		}
		var paidStatus *entity.PaidStatus
		if raw := value(row, "paid_status"); raw != "" {
			status := entity.PaidStatus(raw)
			paidStatus = &status
		}

		tx := entity.NewTransaction(
			entrepreneurID,
			entity.TransactionType(value(row, "type")),
			date,
			amount,
			entity.PaymentMethodCash,
			paidStatus,
			value(row, "customer"),
			value(row, "category"),
			"",
		)
		if err := repo.Save(context.Background(), tx); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theReportDrafterWrites(summary string) error {
	t.drafter.Available = true
	t.drafter.Err = nil
	t.drafter.Result = &entity.ReportDraft{
		Summary:         summary,
		Highlights:      []string{"Sales grew"},
		Recommendations: []string{"Chase pending invoices"},
		Metrics:         []entity.ReportMetric{{Label: "Income", Value: "1500.00"}},
	}
	return nil
}

func (t *testContext) theReportDrafterIsNotConfigured() error {
	t.drafter.Available = false
	return nil
}

func (t *testContext) theReportDrafterIsRateLimited() error {
	t.drafter.Available = true
	t.drafter.Err = domainerror.NewReportError(domainerror.ErrCodeReportRateLimited, "quota exhausted", nil)
	return nil
}
