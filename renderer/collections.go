package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homeledger"
)

// TransactionsMarkdown renders a slice of transactions as a markdown table,
// in the order given.
func TransactionsMarkdown(transactions []homeledger.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(transactions) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		amount := homeledger.FormatMoney(t.Amount, currency)
		if t.Kind == homeledger.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			t.Date.String(), t.Description, t.Category, amount, t.ID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Category", "Amount", "Id"},
		Rows:   rows,
	})

	return doc.String()
}

// GoalsMarkdown renders savings goals with their completion percentage.
func GoalsMarkdown(goals []homeledger.SavingsGoal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings goals")
	if len(goals) == 0 {
		doc.PlainText("No savings goals.")
		return doc.String()
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		progress := homeledger.Percent(0)
		if g.TargetAmount.IsPositive() {
			progress = homeledger.Percent(g.CurrentAmount.Div(g.TargetAmount).InexactFloat64() * 100)
		}
		status := "open"
		if g.IsCompleted {
			status = "done"
		}
		rows = append(rows, []string{
			g.Name,
			homeledger.FormatMoney(g.CurrentAmount, currency),
			homeledger.FormatMoney(g.TargetAmount, currency),
			progress.String(),
			g.Deadline.String(),
			g.Priority.String(),
			status,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Target", "Progress", "Deadline", "Priority", "Status"},
		Rows:   rows,
	})

	return doc.String()
}

// ShopsMarkdown renders the known shops and their cached spending totals.
func ShopsMarkdown(shops []homeledger.Shop, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Shops")
	if len(shops) == 0 {
		doc.PlainText("No shops.")
		return doc.String()
	}

	rows := make([][]string, 0, len(shops))
	for _, s := range shops {
		lastVisit := ""
		if s.LastVisit != nil {
			lastVisit = s.LastVisit.String()
		}
		rows = append(rows, []string{
			s.Name, s.Category, homeledger.FormatMoney(s.TotalSpent, currency), lastVisit,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Shop", "Category", "Total spent", "Last visit"},
		Rows:   rows,
	})

	return doc.String()
}

// LoansMarkdown renders outstanding loans.
func LoansMarkdown(loans []homeledger.Loan, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loans")
	if len(loans) == 0 {
		doc.PlainText("No loans.")
		return doc.String()
	}

	rows := make([][]string, 0, len(loans))
	for _, l := range loans {
		rows = append(rows, []string{
			l.Name,
			l.Type.String(),
			l.Lender,
			homeledger.FormatMoney(l.RemainingAmount, currency),
			homeledger.FormatMoney(l.MonthlyPayment, currency),
			l.NextPaymentDate.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Loan", "Type", "Lender", "Remaining", "Monthly", "Next payment"},
		Rows:   rows,
	})

	return doc.String()
}

// GroceryMarkdown renders every grocery list with its items and the
// recomputed estimated total.
func GroceryMarkdown(lists []homeledger.GroceryList, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Grocery lists")
	if len(lists) == 0 {
		doc.PlainText("No grocery lists.")
		return doc.String()
	}

	for _, l := range lists {
		doc.H2(fmt.Sprintf("%s (%s)", l.Name, l.CreatedDate))

		rows := make([][]string, 0, len(l.Items))
		for _, item := range l.Items {
			price := ""
			if item.EstimatedPrice != nil {
				price = homeledger.FormatMoney(*item.EstimatedPrice, currency)
			}
			bought := ""
			if item.IsPurchased {
				bought = "x"
			}
			rows = append(rows, []string{
				item.Name, item.Quantity.String() + " " + item.Unit, price, bought,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Item", "Quantity", "Estimate", "Bought"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Estimated total: %s", homeledger.FormatMoney(l.EstimatedTotal(), currency)))
	}

	return doc.String()
}
