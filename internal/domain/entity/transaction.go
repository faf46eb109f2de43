// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// PaymentMethod is the tender used for a transaction. It is informational only.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodOther        PaymentMethod = "other"
)

// PaidStatus describes how much of an income transaction has been collected.
type PaidStatus string

const (
	PaidStatusFull    PaidStatus = "full"
	PaidStatusPartial PaidStatus = "partial"
	PaidStatusPending PaidStatus = "pending"
)

// maxNotesLength is the maximum accepted length of transaction notes.
const maxNotesLength = 1000

// Transaction is an income or expense fact recorded for an entrepreneur.
// Once recorded it is never mutated by the analytics layer.
type Transaction struct {
	ID                     uuid.UUID
	EntrepreneurID         uuid.UUID
	Type                   TransactionType
	Date                   time.Time // calendar day, midnight UTC
	Amount                 decimal.Decimal
	PaymentMethod          PaymentMethod
	PaidStatus             *PaidStatus // income only
	CustomerName           string
	ProductServiceCategory string
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewTransaction creates a new Transaction entity.
// Income without a paid status defaults to full; expenses never carry one.
func NewTransaction(
	entrepreneurID uuid.UUID,
	transactionType TransactionType,
	date time.Time,
	amount decimal.Decimal,
	paymentMethod PaymentMethod,
	paidStatus *PaidStatus,
	customerName string,
	category string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	if transactionType == TransactionTypeExpense {
		paidStatus = nil
	} else if paidStatus == nil {
		full := PaidStatusFull
		paidStatus = &full
	}

	if paymentMethod == "" {
		paymentMethod = PaymentMethodCash
	}

	return &Transaction{
		ID:                     uuid.New(),
		EntrepreneurID:         entrepreneurID,
		Type:                   transactionType,
		Date:                   NormalizeDate(date),
		Amount:                 amount,
		PaymentMethod:          paymentMethod,
		PaidStatus:             paidStatus,
		CustomerName:           strings.TrimSpace(customerName),
		ProductServiceCategory: strings.TrimSpace(category),
		Notes:                  notes,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// IsIncome reports whether the transaction is income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// DateKey returns the YYYY-MM-DD key of the transaction date.
func (t *Transaction) DateKey() string {
	return FormatDate(t.Date)
}

// IncomePaidStatus returns the paid status of an income transaction.
// The second value is false for expenses and for income recorded without a status.
func (t *Transaction) IncomePaidStatus() (PaidStatus, bool) {
	if !t.IsIncome() || t.PaidStatus == nil {
		return "", false
	}
	return *t.PaidStatus, true
}

// Validate checks the ledger invariants of the transaction.
func (t *Transaction) Validate() error {
	if t.EntrepreneurID == uuid.Nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingEntrepreneurRef,
			"entrepreneur_id is required",
			domainerror.ErrMissingEntrepreneurReference,
		)
	}

	if !IsValidTransactionType(t.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if t.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if t.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !IsValidPaymentMethod(t.PaymentMethod) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"unknown payment method: "+string(t.PaymentMethod),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if t.PaidStatus != nil && !IsValidPaidStatus(*t.PaidStatus) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaidStatus,
			"paid_status must be 'full', 'partial' or 'pending'",
			domainerror.ErrInvalidPaidStatus,
		)
	}

	if len(t.Notes) > maxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			"notes must be at most 1000 characters",
			domainerror.ErrNotesTooLong,
		)
	}

	return nil
}

// IsValidTransactionType validates the transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// IsValidPaidStatus validates an income paid status.
func IsValidPaidStatus(s PaidStatus) bool {
	return s == PaidStatusFull || s == PaidStatusPartial || s == PaidStatusPending
}

// IsValidPaymentMethod validates the payment method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCard,
		PaymentMethodMobileMoney, PaymentMethodCheque, PaymentMethodOther:
		return true
	}
	return false
}
