// Package aggregate derives summary figures from the ledger.
//
// All functions are pure and recompute their result from the full input on
// every call. A single user's ledger holds hundreds of transactions, not
// millions, so recomputation is cheap and removes the whole class of cache
// invalidation bugs that incremental aggregates bring with them.
package aggregate

import (
	"sort"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySpend is the spending total for one category.
type CategorySpend struct {
	Category models.Category
	Amount   decimal.Decimal // Sum of the absolute expense amounts
}

// DateGroup is the set of transactions of a single calendar day.
type DateGroup struct {
	Date         types.Date
	Transactions []models.Transaction // Ordered by creation time, newest first
	Total        decimal.Decimal      // Signed sum of all amounts of the day
}

// TotalSpent returns the sum of the absolute amounts of all expenses.
//
// Income is not part of this figure: it is a spend aggregate, not a net
// balance.
func TotalSpent(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero

	for _, t := range transactions {
		if t.Amount < 0 {
			total = total.Add(decimal.NewFromFloat(-t.Amount))
		}
	}

	return total
}

// CategoryBreakdown groups expenses by category and sums their absolute
// amounts per group.
//
// Categories without any expense are omitted entirely. The result is sorted
// by amount, largest first; categories with equal amounts keep the order of
// the categories input, which callers pass in registry order.
func CategoryBreakdown(transactions []models.Transaction, categories []models.Category) []CategorySpend {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Amount < 0 {
			key := t.CategoryID.String()
			sums[key] = sums[key].Add(decimal.NewFromFloat(-t.Amount))
		}
	}

	breakdown := make([]CategorySpend, 0, len(sums))
	for _, category := range categories {
		sum, ok := sums[category.ID.String()]
		if !ok {
			continue
		}

		breakdown = append(breakdown, CategorySpend{Category: category, Amount: sum})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}

// GroupByDate partitions transactions by their user-assigned date.
//
// Groups are ordered by date, most recent day first, regardless of when the
// transactions were entered. Within a group, transactions are ordered by
// creation time, newest first, and the total is the signed sum of the
// group's amounts, so a day with more income than expenses has a positive
// total.
func GroupByDate(transactions []models.Transaction) []DateGroup {
	byDay := make(map[string]*DateGroup)

	for _, t := range transactions {
		key := t.Date.String()

		group, ok := byDay[key]
		if !ok {
			group = &DateGroup{Date: t.Date}
			byDay[key] = group
		}

		group.Transactions = append(group.Transactions, t)
		group.Total = group.Total.Add(decimal.NewFromFloat(t.Amount))
	}

	groups := make([]DateGroup, 0, len(byDay))
	for _, group := range byDay {
		sort.SliceStable(group.Transactions, func(i, j int) bool {
			return group.Transactions[i].CreatedAt.After(group.Transactions[j].CreatedAt)
		})

		groups = append(groups, *group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})

	return groups
}

// RemainingBudget returns how much of the monthly budget is left.
//
// The result is negative when the budget is exceeded. Handling that display
// case is up to the caller.
func RemainingBudget(monthlyBudget float64, totalSpent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(monthlyBudget).Sub(totalSpent)
}
