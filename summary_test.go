package homeledger

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"homeledger/date"
)

func TestSummarize_ConcreteScenario(t *testing.T) {
	// Income of 1000 and an expense of 400 in May 2024, no prior-month
	// activity: balance 600, trend 0 because the previous balance is zero.
	transactions := []Transaction{
		income("t1", "Salary", "Paycheck", "2024-05-01", 1000),
		expense("t2", "Food & Dining", "Groceries", "2024-05-15", 400),
	}

	got := Summarize(transactions, date.MustParse("2024-05-15"))

	if !got.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalIncome: got %s, want 1000", got.TotalIncome)
	}
	if !got.TotalExpenses.Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalExpenses: got %s, want 400", got.TotalExpenses)
	}
	if !got.Balance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Balance: got %s, want 600", got.Balance)
	}
	if !got.SavingsTotal.Equal(decimal.NewFromInt(600)) {
		t.Errorf("SavingsTotal: got %s, want 600", got.SavingsTotal)
	}
	if !got.MonthlyTrend.Equal(0) {
		t.Errorf("MonthlyTrend: got %s, want 0", got.MonthlyTrend)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil, date.MustParse("2024-05-15"))
	if !got.TotalIncome.IsZero() || !got.TotalExpenses.IsZero() || !got.Balance.IsZero() || !got.MonthlyTrend.Equal(0) {
		t.Errorf("empty ledger must summarize to all zeros, got %+v", got)
	}
}

func TestSummarize_Trend(t *testing.T) {
	transactions := []Transaction{
		income("t1", "Salary", "April paycheck", "2024-04-01", 500),
		income("t2", "Salary", "May paycheck", "2024-05-01", 1000),
		expense("t3", "Food & Dining", "May groceries", "2024-05-10", 250),
	}
	got := Summarize(transactions, date.MustParse("2024-05-20"))
	// previous balance 500, current 750: +50%.
	if !got.MonthlyTrend.Equal(50) {
		t.Errorf("MonthlyTrend: got %s, want +50%%", got.MonthlyTrend)
	}
}

func TestSummarize_TrendAgainstNegativePreviousBalance(t *testing.T) {
	transactions := []Transaction{
		expense("t1", "Food & Dining", "April overspend", "2024-04-10", 200),
		income("t2", "Salary", "May paycheck", "2024-05-01", 100),
	}
	got := Summarize(transactions, date.MustParse("2024-05-20"))
	// previous balance -200, current 100: change of 300 over abs(-200) = +150%.
	if !got.MonthlyTrend.Equal(150) {
		t.Errorf("MonthlyTrend: got %s, want +150%%", got.MonthlyTrend)
	}
}

func TestSummarize_JanuaryLooksAtPreviousDecember(t *testing.T) {
	transactions := []Transaction{
		income("t1", "Salary", "December paycheck", "2023-12-01", 1000),
		income("t2", "Salary", "January paycheck", "2024-01-01", 1500),
	}
	got := Summarize(transactions, date.MustParse("2024-01-20"))
	if !got.TotalIncome.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("TotalIncome: got %s, want 1500", got.TotalIncome)
	}
	if !got.MonthlyTrend.Equal(50) {
		t.Errorf("MonthlyTrend: got %s, want +50%% vs December", got.MonthlyTrend)
	}
}

func TestSummarize_NegativeBalanceSavingsIsZero(t *testing.T) {
	transactions := []Transaction{
		expense("t1", "Food & Dining", "Groceries", "2024-05-05", 400),
	}
	got := Summarize(transactions, date.MustParse("2024-05-15"))
	if !got.SavingsTotal.IsZero() {
		t.Errorf("SavingsTotal: got %s, want 0 for a negative balance", got.SavingsTotal)
	}
}

func TestBudgetUtilization(t *testing.T) {
	ref := date.MustParse("2024-05-15")
	budgets := []Budget{
		{ID: "b1", Category: "Food & Dining", Amount: decimal.NewFromInt(500), Period: date.Monthly,
			StartDate: date.MustParse("2024-05-01"), EndDate: date.MustParse("2024-05-31")},
		{ID: "b2", Category: "Shopping", Amount: decimal.NewFromInt(300), Period: date.Monthly,
			StartDate: date.MustParse("2024-05-01"), EndDate: date.MustParse("2024-05-31")},
		// weekly budgets do not participate
		{ID: "b3", Category: "Entertainment", Amount: decimal.NewFromInt(9999), Period: date.Weekly,
			StartDate: date.MustParse("2024-05-01"), EndDate: date.MustParse("2024-05-31")},
	}
	transactions := []Transaction{
		expense("t1", "Food & Dining", "Groceries", "2024-05-02", 200),
		expense("t2", "Shopping", "Shoes", "2024-05-10", 100),
		expense("t3", "Shopping", "Out of month", "2024-04-10", 500),
		income("t4", "Salary", "Not an expense", "2024-05-01", 400),
		expense("t5", "Healthcare", "No budget for this", "2024-05-11", 50),
	}

	// spent 300 of 800: 37.5%
	if got := BudgetUtilization(transactions, budgets, ref); !got.Equal(37.5) {
		t.Errorf("got %s, want 37.50%%", got)
	}
}

func TestBudgetUtilization_ZeroLaws(t *testing.T) {
	ref := date.MustParse("2024-05-15")
	budgets := []Budget{
		{ID: "b1", Category: "Food & Dining", Amount: decimal.NewFromInt(500), Period: date.Monthly},
	}
	transactions := []Transaction{
		expense("t1", "Food & Dining", "Groceries", "2024-05-02", 200),
	}

	if got := BudgetUtilization(nil, budgets, ref); !got.Equal(0) {
		t.Errorf("no transactions: got %s, want 0", got)
	}
	if got := BudgetUtilization(transactions, nil, ref); !got.Equal(0) {
		t.Errorf("no budgets: got %s, want 0", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	transactions := []Transaction{
		expense("t1", "Food & Dining", "first", "2024-05-01", 1),
		expense("t2", "Shopping", "second", "2024-05-02", 2),
		expense("t3", "Food & Dining", "third", "2024-05-03", 3),
	}
	groups := GroupByCategory(transactions)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	wantFood := []string{"t1", "t3"}
	var gotFood []string
	for _, tx := range groups["Food & Dining"] {
		gotFood = append(gotFood, tx.ID)
	}
	if !reflect.DeepEqual(gotFood, wantFood) {
		t.Errorf("relative order not preserved: got %v, want %v", gotFood, wantFood)
	}
}

func TestFilterRange(t *testing.T) {
	transactions := []Transaction{
		expense("t1", "Food & Dining", "before", "2024-04-30", 1),
		expense("t2", "Food & Dining", "first day", "2024-05-01", 2),
		expense("t3", "Food & Dining", "last day", "2024-05-31", 3),
		expense("t4", "Food & Dining", "after", "2024-06-01", 4),
	}
	r := date.NewRange(date.MustParse("2024-05-15"), date.Monthly)

	got := FilterRange(transactions, r)
	if len(got) != 2 || got[0].ID != "t2" || got[1].ID != "t3" {
		t.Errorf("got %v, want the two May transactions, boundaries included", got)
	}
}
