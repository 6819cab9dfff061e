package homeledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"homeledger/date"
)

// Kind tells whether a transaction or category moves money in or out.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown kind: %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Priority ranks a savings goal.
type Priority int

const (
	Low Priority = iota
	Medium
	High
)

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// ParsePriority parses a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(s) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return 0, fmt.Errorf("unknown priority: %q", s)
	}
}

func (p Priority) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Priority) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParsePriority(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Transaction is a single income or expense entry of the ledger.
//
// Category holds the category name, not its id; lookups rely on category
// names being unique per kind.
type Transaction struct {
	ID              string          `json:"id"`
	Kind            Kind            `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Date            date.Date       `json:"date"`
	Shop            string          `json:"shop,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Recurring       bool            `json:"recurring,omitempty"`
	RecurringPeriod *date.Period    `json:"recurringPeriod,omitempty"`
}

// Key returns the record identity.
func (t Transaction) Key() string { return t.ID }

// Category classifies transactions. The optional Budget is a spending
// ceiling displayed next to the category, distinct from Budget records.
type Category struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Kind   Kind             `json:"type"`
	Color  string           `json:"color"`
	Icon   string           `json:"icon"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
}

func (c Category) Key() string { return c.ID }

// Shop is a place money is spent at. TotalSpent and LastVisit are cached
// aggregates: the store never recomputes them, callers update them when they
// record a matching transaction.
type Shop struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Address    string          `json:"address,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Website    string          `json:"website,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	LastVisit  *date.Date      `json:"lastVisit,omitempty"`
}

func (s Shop) Key() string { return s.ID }

// SavingsGoal tracks progress toward a target amount before a deadline.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      date.Date       `json:"deadline"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Priority      Priority        `json:"priority"`
	IsCompleted   bool            `json:"isCompleted"`
}

func (g SavingsGoal) Key() string { return g.ID }

// Budget is a spending ceiling for one category over a recurring period.
// Spent is a cached aggregate like Shop.TotalSpent; BudgetUtilization
// recomputes utilization from transactions and never trusts it.
type Budget struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Period    date.Period     `json:"period"`
	StartDate date.Date       `json:"startDate"`
	EndDate   date.Date       `json:"endDate"`
}

func (b Budget) Key() string { return b.ID }

// GroceryItem is one line of a grocery list.
type GroceryItem struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Unit           string           `json:"unit"`
	EstimatedPrice *decimal.Decimal `json:"estimatedPrice,omitempty"`
	IsPurchased    bool             `json:"isPurchased"`
	Notes          string           `json:"notes,omitempty"`
}

// GroceryList is an ordered list of items to buy. TotalEstimated should equal
// the sum of the item estimates; EstimatedTotal recomputes it.
type GroceryList struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Items          []GroceryItem    `json:"items"`
	TotalEstimated decimal.Decimal  `json:"totalEstimated"`
	TotalActual    *decimal.Decimal `json:"totalActual,omitempty"`
	CreatedDate    date.Date        `json:"createdDate"`
	CompletedDate  *date.Date       `json:"completedDate,omitempty"`
	IsCompleted    bool             `json:"isCompleted"`
}

func (l GroceryList) Key() string { return l.ID }

// EstimatedTotal sums the estimated prices of all items. Items with no
// estimate count as zero.
func (l GroceryList) EstimatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		if item.EstimatedPrice != nil {
			total = total.Add(*item.EstimatedPrice)
		}
	}
	return total
}

// LoanType classifies a loan.
type LoanType int

const (
	Personal LoanType = iota
	Mortgage
	Auto
	Student
	CreditCard
	OtherLoan
)

func (t LoanType) String() string {
	switch t {
	case Personal:
		return "personal"
	case Mortgage:
		return "mortgage"
	case Auto:
		return "auto"
	case Student:
		return "student"
	case CreditCard:
		return "credit_card"
	case OtherLoan:
		return "other"
	default:
		return "unknown"
	}
}

// ParseLoanType parses a string into a LoanType.
func ParseLoanType(s string) (LoanType, error) {
	switch strings.ToLower(s) {
	case "personal":
		return Personal, nil
	case "mortgage":
		return Mortgage, nil
	case "auto":
		return Auto, nil
	case "student":
		return Student, nil
	case "credit_card":
		return CreditCard, nil
	case "other":
		return OtherLoan, nil
	default:
		return 0, fmt.Errorf("unknown loan type: %q", s)
	}
}

func (t LoanType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *LoanType) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseLoanType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Loan tracks an outstanding debt and its payment schedule.
type Loan struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	StartDate       date.Date       `json:"startDate"`
	EndDate         date.Date       `json:"endDate"`
	Lender          string          `json:"lender"`
	Type            LoanType        `json:"type"`
	NextPaymentDate date.Date       `json:"nextPaymentDate"`
}

func (l Loan) Key() string { return l.ID }

// Theme selects the presentation color scheme.
type Theme int

const (
	System Theme = iota
	Light
	Dark
)

func (t Theme) String() string {
	switch t {
	case System:
		return "system"
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "system":
		return System, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return 0, fmt.Errorf("unknown theme: %q", s)
	}
}

func (t Theme) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Theme) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseTheme(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Settings is the per-store singleton of user preferences.
type Settings struct {
	Currency      string `json:"currency"`
	DateFormat    string `json:"dateFormat"`
	Theme         Theme  `json:"theme"`
	Notifications bool   `json:"notifications"`
	BackupEnabled bool   `json:"backupEnabled"`
	Language      string `json:"language"`
}
