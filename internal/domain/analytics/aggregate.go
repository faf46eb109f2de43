// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// UncategorizedCategory is the category of transactions without one.
const UncategorizedCategory = "Uncategorized"

const (
	// DefaultTopN is the length of every top-N ranking unless configured.
	DefaultTopN = 5
	// DefaultRecentActivity is the length of the recent activity feed unless configured.
	DefaultRecentActivity = 7
)

// Totals are the plain sums of a transaction set.
type Totals struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Net              decimal.Decimal
	IncomeCount      int
	ExpenseCount     int
	TransactionCount int
}

// Receivables describe how much billed income is still outstanding.
//
// A partial payment counts its whole recorded amount as outstanding because the
// ledger stores no paid-so-far amount.
type Receivables struct {
	TotalBilled      decimal.Decimal
	Outstanding      decimal.Decimal
	OutstandingCount int
	CollectionRate   float64
	FullPaymentRate  float64
}

// CategoryShare is one row of a category breakdown.
type CategoryShare struct {
	Category         string
	Amount           decimal.Decimal
	TransactionCount int
	Percentage       float64
}

// Options tune Aggregate.
type Options struct {
	TopN int
}

// Summary is the full derived view of a period.
type Summary struct {
	Totals
	Receivables
	NewEntrepreneurs        int
	AverageTransactionValue decimal.Decimal
	ProfitMargin            float64
	IncomeByCategory        []CategoryShare
	ExpenseByCategory       []CategoryShare
	TopCustomers            []CustomerRank
	TopProducts             []ProductRank
	TopEntrepreneurs        []EntrepreneurRank
}

// Aggregate restricts txs and entrepreneurs to period and computes every summary
// figure. A nil entrepreneur set yields zero new entrepreneurs and "Unknown" names.
func Aggregate(txs []*entity.Transaction, entrepreneurs []*entity.Entrepreneur, period Period, opts Options) Summary {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	inPeriod := FilterTransactions(txs, period)
	totals := ComputeTotals(inPeriod)

	return Summary{
		Totals:                  totals,
		Receivables:             ComputeReceivables(inPeriod),
		NewEntrepreneurs:        CountNewEntrepreneurs(entrepreneurs, period),
		AverageTransactionValue: averageIncome(totals),
		ProfitMargin:            percentOf(totals.Net, totals.Income),
		IncomeByCategory:        CategoryBreakdown(inPeriod, entity.TransactionTypeIncome),
		ExpenseByCategory:       CategoryBreakdown(inPeriod, entity.TransactionTypeExpense),
		TopCustomers:            TopCustomers(inPeriod, topN),
		TopProducts:             TopProducts(inPeriod, topN),
		TopEntrepreneurs:        TopEntrepreneurs(inPeriod, entity.EntrepreneurNames(entrepreneurs), topN),
	}
}

// ComputeTotals sums income and expenses.
func ComputeTotals(txs []*entity.Transaction) Totals {
	totals := Totals{Income: decimal.Zero, Expenses: decimal.Zero}

	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
			totals.IncomeCount++
		case entity.TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
			totals.ExpenseCount++
		}
	}

	totals.TransactionCount = totals.IncomeCount + totals.ExpenseCount
	totals.Net = totals.Income.Sub(totals.Expenses)
	return totals
}

// CountNewEntrepreneurs counts entrepreneurs whose start date falls inside period.
func CountNewEntrepreneurs(entrepreneurs []*entity.Entrepreneur, period Period) int {
	count := 0
	for _, e := range entrepreneurs {
		if !e.StartDate.IsZero() && period.Contains(e.StartDate) {
			count++
		}
	}
	return count
}

// ComputeReceivables derives outstanding income and collection rates.
// Expenses are ignored. Rates are 0 when there is no income.
func ComputeReceivables(txs []*entity.Transaction) Receivables {
	r := Receivables{TotalBilled: decimal.Zero, Outstanding: decimal.Zero}
	incomeCount, fullCount := 0, 0

	for _, tx := range txs {
		if !tx.IsIncome() {
			continue
		}
		incomeCount++
		r.TotalBilled = r.TotalBilled.Add(tx.Amount)

		status, ok := tx.IncomePaidStatus()
		if !ok {
			continue
		}
		switch status {
		case entity.PaidStatusFull:
			fullCount++
		case entity.PaidStatusPending, entity.PaidStatusPartial:
			r.Outstanding = r.Outstanding.Add(tx.Amount)
			r.OutstandingCount++
		}
	}

	r.CollectionRate = percentOf(r.TotalBilled.Sub(r.Outstanding), r.TotalBilled)
	if incomeCount > 0 {
		r.FullPaymentRate = percentOf(decimal.NewFromInt(int64(fullCount)), decimal.NewFromInt(int64(incomeCount)))
	}
	return r
}

// CategoryBreakdown groups transactions of the given type by category, sorted
// by descending amount. Ties keep first-encountered order.
func CategoryBreakdown(txs []*entity.Transaction, transactionType entity.TransactionType) []CategoryShare {
	index := make(map[string]int)
	shares := make([]CategoryShare, 0)
	total := decimal.Zero

	for _, tx := range txs {
		if tx.Type != transactionType {
			continue
		}

		category := strings.TrimSpace(tx.ProductServiceCategory)
		if category == "" {
			category = UncategorizedCategory
		}

		i, ok := index[category]
		if !ok {
			i = len(shares)
			index[category] = i
			shares = append(shares, CategoryShare{Category: category, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(tx.Amount)
		shares[i].TransactionCount++
		total = total.Add(tx.Amount)
	}

	for i := range shares {
		shares[i].Percentage = percentOf(shares[i].Amount, total)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return shares
}

func averageIncome(totals Totals) decimal.Decimal {
	if totals.IncomeCount == 0 {
		return decimal.Zero
	}
	return totals.Income.Div(decimal.NewFromInt(int64(totals.IncomeCount))).Round(2)
}

// percentOf returns part/whole*100 rounded to two places, or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(whole).Round(2).InexactFloat64()
}
