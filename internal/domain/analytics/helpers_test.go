package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

var testEntrepreneurID = uuid.MustParse("7f8c2d10-0000-4000-8000-000000000001")

func day(value string) time.Time {
	d, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func paid(status entity.PaidStatus) *entity.PaidStatus {
	return &status
}

func income(date, amount string) *entity.Transaction {
	return entity.NewTransaction(testEntrepreneurID, entity.TransactionTypeIncome, day(date), dec(amount),
		entity.PaymentMethodCash, nil, "", "", "")
}

func expense(date, amount string) *entity.Transaction {
	return entity.NewTransaction(testEntrepreneurID, entity.TransactionTypeExpense, day(date), dec(amount),
		entity.PaymentMethodCash, nil, "", "", "")
}

func withCustomer(tx *entity.Transaction, name string) *entity.Transaction {
	tx.CustomerName = name
	return tx
}

func withCategory(tx *entity.Transaction, category string) *entity.Transaction {
	tx.ProductServiceCategory = category
	return tx
}

func withStatus(tx *entity.Transaction, status entity.PaidStatus) *entity.Transaction {
	tx.PaidStatus = paid(status)
	return tx
}
