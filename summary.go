package homeledger

import (
	"github.com/shopspring/decimal"

	"homeledger/date"
)

// Summary is the derived financial picture of one reference month.
type Summary struct {
	Month         date.Date // any day of the reference month
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	SavingsTotal  decimal.Decimal
	MonthlyTrend  Percent
}

// monthBalance folds the transactions of one calendar month into income,
// expenses and their difference.
func monthBalance(transactions []Transaction, month date.Range) (income, expenses, balance decimal.Decimal) {
	for _, t := range transactions {
		if !month.Contains(t.Date) {
			continue
		}
		switch t.Kind {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses, income.Sub(expenses)
}

// Summarize derives the financial summary for the calendar month containing
// ref.
//
// The monthly trend is the percentage change of the balance against the
// previous calendar month (December of the previous year when ref is in
// January). When the previous balance is exactly zero the trend is defined
// as zero rather than dividing by it.
//
// SavingsTotal is deliberately simplified to max(0, balance); it does not
// net against SavingsGoal records.
func Summarize(transactions []Transaction, ref date.Date) Summary {
	thisMonth := date.NewRange(ref, date.Monthly)
	prevMonth := date.NewRange(ref.StartOf(date.Monthly).Add(-1), date.Monthly)

	income, expenses, balance := monthBalance(transactions, thisMonth)
	_, _, prevBalance := monthBalance(transactions, prevMonth)

	var trend Percent
	if !prevBalance.IsZero() {
		change := balance.Sub(prevBalance).Div(prevBalance.Abs()).Mul(decimal.NewFromInt(100))
		trend = Percent(change.InexactFloat64())
	}

	savings := balance
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	return Summary{
		Month:         ref,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       balance,
		SavingsTotal:  savings,
		MonthlyTrend:  trend,
	}
}

// BudgetUtilization derives how much of the combined monthly budget ceilings
// was consumed by matching-category expenses in the calendar month of ref.
// Only budgets with a monthly period participate. The result is zero when
// there is no participating budget.
func BudgetUtilization(transactions []Transaction, budgets []Budget, ref date.Date) Percent {
	month := date.NewRange(ref, date.Monthly)

	var totalBudget, totalSpent decimal.Decimal
	for _, b := range budgets {
		if b.Period != date.Monthly {
			continue
		}
		totalBudget = totalBudget.Add(b.Amount)
		for _, t := range transactions {
			if t.Kind == Expense && t.Category == b.Category && month.Contains(t.Date) {
				totalSpent = totalSpent.Add(t.Amount)
			}
		}
	}
	if totalBudget.IsZero() {
		return 0
	}
	utilization := totalSpent.Div(totalBudget).Mul(decimal.NewFromInt(100))
	return Percent(utilization.InexactFloat64())
}

// GroupByCategory maps category names to their transactions, preserving the
// original relative order within each group.
func GroupByCategory(transactions []Transaction) map[string][]Transaction {
	groups := make(map[string][]Transaction)
	for _, t := range transactions {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return groups
}

// FilterRange returns the transactions whose date falls inside the range,
// boundaries included, preserving order.
func FilterRange(transactions []Transaction, r date.Range) []Transaction {
	var out []Transaction
	for _, t := range transactions {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
