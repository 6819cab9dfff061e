// Package renderer turns derived ledger values into markdown reports for the
// CLI to display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"homeledger"
	"homeledger/date"
)

// SummaryMarkdown renders the monthly financial summary as a markdown
// document. Amounts are formatted in the store's display currency.
func SummaryMarkdown(s homeledger.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", s.Month.Format("January 2006")))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", homeledger.FormatMoney(s.TotalIncome, currency)},
			{"Expenses", homeledger.FormatMoney(s.TotalExpenses, currency)},
			{"Balance", homeledger.FormatSignedMoney(s.Balance, currency)},
			{"Savings", homeledger.FormatMoney(s.SavingsTotal, currency)},
			{"Trend vs previous month", s.MonthlyTrend.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}

// BudgetsMarkdown renders every monthly budget next to what was actually
// spent in the month of ref, with the overall utilization on top.
func BudgetsMarkdown(transactions []homeledger.Transaction, budgets []homeledger.Budget, ref date.Date, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budgets for %s", ref.Format("January 2006")))

	utilization := homeledger.BudgetUtilization(transactions, budgets, ref)
	doc.PlainText(fmt.Sprintf("Overall utilization: %s", utilization))

	month := date.NewRange(ref, date.Monthly)
	groups := homeledger.GroupByCategory(homeledger.FilterRange(transactions, month))

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		if b.Period != date.Monthly {
			continue
		}
		spent := sumExpenses(groups[b.Category])
		rows = append(rows, []string{
			b.Category,
			homeledger.FormatMoney(b.Amount, currency),
			homeledger.FormatMoney(spent, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Ceiling", "Spent"},
		Rows:   rows,
	})

	return doc.String()
}

// RecurringMarkdown lists every recurring transaction with its next
// occurrence.
func RecurringMarkdown(transactions []homeledger.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recurring transactions")

	var rows [][]string
	for _, t := range transactions {
		if !t.Recurring || t.RecurringPeriod == nil {
			continue
		}
		next := homeledger.NextOccurrence(t.Date, *t.RecurringPeriod)
		rows = append(rows, []string{
			t.Description,
			homeledger.FormatMoney(t.Amount, currency),
			t.RecurringPeriod.String(),
			next.String(),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("No recurring transactions.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Description", "Amount", "Period", "Next"},
		Rows:   rows,
	})

	return doc.String()
}

func sumExpenses(transactions []homeledger.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Kind == homeledger.Expense {
			total = total.Add(t.Amount)
		}
	}
	return total
}
