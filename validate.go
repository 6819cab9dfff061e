package homeledger

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports why a record was rejected, keyed by field name.
// The store validates on save, so a record that fails here never reaches
// the backend.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// add records a field failure, allocating the map lazily so the zero value
// doubles as "no failures yet".
func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// or returns the error if any field failed, nil otherwise.
func (e *ValidationError) or() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate checks the transaction invariants: positive amount, category and
// description present, a real date, and a period on recurring entries.
func (t Transaction) Validate() error {
	var e ValidationError
	if t.ID == "" {
		e.add("id", "is required")
	}
	if !t.Amount.IsPositive() {
		e.add("amount", "must be greater than zero")
	}
	if t.Category == "" {
		e.add("category", "is required")
	}
	if t.Description == "" {
		e.add("description", "is required")
	}
	if t.Date.IsZero() {
		e.add("date", "is required")
	}
	if t.Recurring && t.RecurringPeriod == nil {
		e.add("recurringPeriod", "is required for recurring transactions")
	}
	return e.or()
}

// Validate checks the category invariants.
func (c Category) Validate() error {
	var e ValidationError
	if c.ID == "" {
		e.add("id", "is required")
	}
	if c.Name == "" {
		e.add("name", "is required")
	}
	if c.Budget != nil && !c.Budget.IsPositive() {
		e.add("budget", "must be greater than zero when set")
	}
	return e.or()
}

// Validate checks the shop invariants.
func (s Shop) Validate() error {
	var e ValidationError
	if s.ID == "" {
		e.add("id", "is required")
	}
	if s.Name == "" {
		e.add("name", "is required")
	}
	if s.TotalSpent.IsNegative() {
		e.add("totalSpent", "must not be negative")
	}
	return e.or()
}

// Validate checks the savings goal invariants.
func (g SavingsGoal) Validate() error {
	var e ValidationError
	if g.ID == "" {
		e.add("id", "is required")
	}
	if g.Name == "" {
		e.add("name", "is required")
	}
	if !g.TargetAmount.IsPositive() {
		e.add("targetAmount", "must be greater than zero")
	}
	if g.CurrentAmount.IsNegative() {
		e.add("currentAmount", "must not be negative")
	}
	return e.or()
}

// Validate checks the budget invariants, notably endDate >= startDate.
func (b Budget) Validate() error {
	var e ValidationError
	if b.ID == "" {
		e.add("id", "is required")
	}
	if b.Category == "" {
		e.add("category", "is required")
	}
	if !b.Amount.IsPositive() {
		e.add("amount", "must be greater than zero")
	}
	if b.EndDate.Before(b.StartDate) {
		e.add("endDate", "must not be before startDate")
	}
	return e.or()
}

// Validate checks the grocery list invariants.
func (l GroceryList) Validate() error {
	var e ValidationError
	if l.ID == "" {
		e.add("id", "is required")
	}
	if l.Name == "" {
		e.add("name", "is required")
	}
	for i, item := range l.Items {
		if item.Name == "" {
			e.add(fmt.Sprintf("items[%d].name", i), "is required")
		}
		if item.Quantity.IsNegative() {
			e.add(fmt.Sprintf("items[%d].quantity", i), "must not be negative")
		}
	}
	return e.or()
}

// Validate checks the loan invariants, notably 0 <= remaining <= total.
func (l Loan) Validate() error {
	var e ValidationError
	if l.ID == "" {
		e.add("id", "is required")
	}
	if l.Name == "" {
		e.add("name", "is required")
	}
	if !l.TotalAmount.IsPositive() {
		e.add("totalAmount", "must be greater than zero")
	}
	if l.RemainingAmount.IsNegative() {
		e.add("remainingAmount", "must not be negative")
	}
	if l.RemainingAmount.GreaterThan(l.TotalAmount) {
		e.add("remainingAmount", "must not exceed totalAmount")
	}
	if l.EndDate.Before(l.StartDate) {
		e.add("endDate", "must not be before startDate")
	}
	return e.or()
}

// Validate checks the settings invariants.
func (s Settings) Validate() error {
	var e ValidationError
	if s.Currency == "" {
		e.add("currency", "is required")
	}
	return e.or()
}
