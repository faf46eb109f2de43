// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// TransactionInput is the raw form of one ledger entry.
type TransactionInput struct {
	ID                     string // optional; kept on import
	EntrepreneurID         string
	Type                   string
	Date                   string // YYYY-MM-DD
	Amount                 string
	PaymentMethod          string
	PaidStatus             *string
	CustomerName           string
	ProductServiceCategory string
	Notes                  string
}

// build parses and validates the input into a transaction entity.
// Malformed dates and amounts fail instead of being coerced.
func (in TransactionInput) build() (*entity.Transaction, error) {
	entrepreneurID, err := uuid.Parse(strings.TrimSpace(in.EntrepreneurID))
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingEntrepreneurRef,
			"entrepreneur_id must be a valid id",
			domainerror.ErrMissingEntrepreneurReference,
		)
	}

	date, err := entity.ParseLedgerDate(in.Date)
	if err != nil {
		return nil, err
	}

	amount, err := entity.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	var paidStatus *entity.PaidStatus
	if in.PaidStatus != nil && strings.TrimSpace(*in.PaidStatus) != "" {
		status := entity.PaidStatus(strings.ToLower(strings.TrimSpace(*in.PaidStatus)))
		paidStatus = &status
	}

	tx := entity.NewTransaction(
		entrepreneurID,
		entity.TransactionType(strings.ToLower(strings.TrimSpace(in.Type))),
		date,
		amount,
		entity.PaymentMethod(strings.ToLower(strings.TrimSpace(in.PaymentMethod))),
		paidStatus,
		in.CustomerName,
		in.ProductServiceCategory,
		in.Notes,
	)

	if id := strings.TrimSpace(in.ID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionID,
				"id must be a valid id",
				domainerror.ErrInvalidTransactionID,
			)
		}
		tx.ID = parsed
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}
