// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// CustomerRank is a customer ranked by total income.
type CustomerRank struct {
	Name             string
	Amount           decimal.Decimal
	TransactionCount int
	LastPurchaseDate time.Time
}

// ProductRank is a product or service category ranked by revenue.
type ProductRank struct {
	Category         string
	Amount           decimal.Decimal
	TransactionCount int
}

// EntrepreneurRank is an entrepreneur ranked by income.
type EntrepreneurRank struct {
	EntrepreneurID   uuid.UUID
	Name             string
	Amount           decimal.Decimal
	TransactionCount int
}

// incomeGroup accumulates income for one ranking key.
type incomeGroup[K comparable] struct {
	key    K
	amount decimal.Decimal
	count  int
	last   time.Time
}

// rankIncome groups income transactions by key, dropping those for which key
// reports false, and returns the first n groups by descending amount. Ties keep
// first-encountered order.
func rankIncome[K comparable](txs []*entity.Transaction, n int, key func(*entity.Transaction) (K, bool)) []incomeGroup[K] {
	if n <= 0 {
		return []incomeGroup[K]{}
	}

	index := make(map[K]int)
	groups := make([]incomeGroup[K], 0)

	for _, tx := range txs {
		if !tx.IsIncome() {
			continue
		}
		k, ok := key(tx)
		if !ok {
			continue
		}

		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, incomeGroup[K]{key: k, amount: decimal.Zero})
		}

		g := &groups[i]
		g.amount = g.amount.Add(tx.Amount)
		g.count++
		if tx.Date.After(g.last) {
			g.last = tx.Date
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].amount.GreaterThan(groups[j].amount)
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// TopCustomers ranks named customers by income. Transactions without a customer
// name are left out entirely.
func TopCustomers(txs []*entity.Transaction, n int) []CustomerRank {
	groups := rankIncome(txs, n, func(tx *entity.Transaction) (string, bool) {
		name := strings.TrimSpace(tx.CustomerName)
		return name, name != ""
	})

	ranks := make([]CustomerRank, 0, len(groups))
	for _, g := range groups {
		ranks = append(ranks, CustomerRank{
			Name:             g.key,
			Amount:           g.amount,
			TransactionCount: g.count,
			LastPurchaseDate: g.last,
		})
	}
	return ranks
}

// TopProducts ranks product or service categories by income. Blank categories are left out.
func TopProducts(txs []*entity.Transaction, n int) []ProductRank {
	groups := rankIncome(txs, n, func(tx *entity.Transaction) (string, bool) {
		category := strings.TrimSpace(tx.ProductServiceCategory)
		return category, category != ""
	})

	ranks := make([]ProductRank, 0, len(groups))
	for _, g := range groups {
		ranks = append(ranks, ProductRank{
			Category:         g.key,
			Amount:           g.amount,
			TransactionCount: g.count,
		})
	}
	return ranks
}

// TopEntrepreneurs ranks entrepreneurs by income. Entrepreneurs missing from
// names are still ranked, under entity.UnknownEntrepreneurName.
func TopEntrepreneurs(txs []*entity.Transaction, names map[uuid.UUID]string, n int) []EntrepreneurRank {
	groups := rankIncome(txs, n, func(tx *entity.Transaction) (uuid.UUID, bool) {
		return tx.EntrepreneurID, tx.EntrepreneurID != uuid.Nil
	})

	ranks := make([]EntrepreneurRank, 0, len(groups))
	for _, g := range groups {
		ranks = append(ranks, EntrepreneurRank{
			EntrepreneurID:   g.key,
			Name:             displayName(names, g.key),
			Amount:           g.amount,
			TransactionCount: g.count,
		})
	}
	return ranks
}

func displayName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return entity.UnknownEntrepreneurName
}
