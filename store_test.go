package homeledger

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"homeledger/date"
	"homeledger/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	return Open(backend, zerolog.Nop()), backend
}

func expense(id, category, description, day string, amount int64) Transaction {
	return Transaction{
		ID:          id,
		Kind:        Expense,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: description,
		Date:        date.MustParse(day),
	}
}

func income(id, category, description, day string, amount int64) Transaction {
	t := expense(id, category, description, day, amount)
	t.Kind = Income
	return t
}

func TestOpen_SeedsDefaultsOnce(t *testing.T) {
	backend := storage.NewMemory()
	s := Open(backend, zerolog.Nop())

	if got := s.Categories(); !reflect.DeepEqual(got, DefaultCategories()) {
		t.Errorf("got %d categories, want the seeded defaults", len(got))
	}
	if got := s.Settings(); got != DefaultSettings() {
		t.Errorf("got settings %+v, want the seeded defaults", got)
	}

	// Reopening must keep user state rather than reseed.
	s.DeleteCategory("1")
	s2 := Open(backend, zerolog.Nop())
	for _, c := range s2.Categories() {
		if c.ID == "1" {
			t.Error("reopen reseeded a deleted default category")
		}
	}
}

func TestSaveTransaction_UpsertThenGetAll(t *testing.T) {
	s, _ := newTestStore(t)

	tx := expense("t1", "Food & Dining", "Lunch", "2024-05-01", 12)
	if err := s.SaveTransaction(tx); err != nil {
		t.Fatalf("save: %v", err)
	}

	tx.Description = "Team lunch"
	tx.Amount = decimal.NewFromInt(42)
	if err := s.SaveTransaction(tx); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := s.Transactions()
	if len(got) != 1 {
		t.Fatalf("got %d transactions, want exactly one (overwrite, not duplicate)", len(got))
	}
	if got[0].Description != "Team lunch" || !got[0].Amount.Equal(decimal.NewFromInt(42)) {
		t.Errorf("got %+v, want the replaced content", got[0])
	}
}

func TestSaveTransaction_UpsertPreservesPosition(t *testing.T) {
	s, _ := newTestStore(t)

	for _, tx := range []Transaction{
		expense("a", "Food & Dining", "first", "2024-05-01", 1),
		expense("b", "Shopping", "second", "2024-05-02", 2),
		expense("c", "Healthcare", "third", "2024-05-03", 3),
	} {
		if err := s.SaveTransaction(tx); err != nil {
			t.Fatalf("save %s: %v", tx.ID, err)
		}
	}

	middle := expense("b", "Shopping", "second, edited", "2024-05-02", 20)
	if err := s.SaveTransaction(middle); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := s.Transactions()
	wantOrder := []string{"a", "b", "c"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
	if got[1].Description != "second, edited" {
		t.Errorf("replaced record kept old content: %+v", got[1])
	}
}

func TestDeleteTransaction(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SaveTransaction(expense("t1", "Food & Dining", "Lunch", "2024-05-01", 12)); err != nil {
		t.Fatalf("save: %v", err)
	}

	s.DeleteTransaction("t1")
	if got := s.Transactions(); len(got) != 0 {
		t.Errorf("got %d transactions after delete, want 0", len(got))
	}

	// Deleting a nonexistent id is a no-op, not an error.
	s.DeleteTransaction("t1")
	s.DeleteTransaction("never-existed")
	if got := s.Transactions(); len(got) != 0 {
		t.Errorf("no-op delete changed state: %v", got)
	}
}

func TestSaveTransaction_Validation(t *testing.T) {
	s, _ := newTestStore(t)

	testCases := []struct {
		name      string
		tx        Transaction
		wantField string
	}{
		{
			name:      "non-positive amount",
			tx:        expense("t1", "Food & Dining", "Lunch", "2024-05-01", 0),
			wantField: "amount",
		},
		{
			name:      "missing description",
			tx:        expense("t2", "Food & Dining", "", "2024-05-01", 10),
			wantField: "description",
		},
		{
			name: "missing date",
			tx: Transaction{
				ID: "t3", Kind: Expense, Amount: decimal.NewFromInt(10),
				Category: "Food & Dining", Description: "Lunch",
			},
			wantField: "date",
		},
		{
			name:      "unknown category",
			tx:        expense("t4", "Not A Category", "Lunch", "2024-05-01", 10),
			wantField: "category",
		},
		{
			name:      "category of the wrong kind",
			tx:        income("t5", "Food & Dining", "Lunch", "2024-05-01", 10),
			wantField: "category",
		},
	}
	for _, tc := range testCases {
		err := s.SaveTransaction(tc.tx)
		if err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %T, want *ValidationError", tc.name, err)
			continue
		}
		if _, ok := verr.Fields[tc.wantField]; !ok {
			t.Errorf("%s: error not keyed by %q: %v", tc.name, tc.wantField, verr.Fields)
		}
		if got := s.Transactions(); len(got) != 0 {
			t.Errorf("%s: rejected record reached the store", tc.name)
		}
	}
}

func TestGetAll_DegradesToDefaultOnCorruptData(t *testing.T) {
	s, backend := newTestStore(t)
	if err := backend.Write(keyTransactions, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Transactions(); len(got) != 0 {
		t.Errorf("got %v, want the empty default", got)
	}

	if err := backend.Write(keyCategories, []byte("[broken")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Categories(); !reflect.DeepEqual(got, DefaultCategories()) {
		t.Errorf("corrupt categories must degrade to the seeded defaults")
	}
}

func TestGetAll_DegradesToDefaultOnReadFailure(t *testing.T) {
	s, backend := newTestStore(t)
	if err := s.SaveTransaction(expense("t1", "Food & Dining", "Lunch", "2024-05-01", 12)); err != nil {
		t.Fatalf("save: %v", err)
	}

	backend.FailReads = errors.New("medium unavailable")
	if got := s.Transactions(); len(got) != 0 {
		t.Errorf("failing read must degrade to the default, got %v", got)
	}
	if got := s.Settings(); got != DefaultSettings() {
		t.Errorf("failing settings read must degrade to defaults, got %+v", got)
	}
}

func TestSave_DroppedWriteDoesNotCrash(t *testing.T) {
	s, backend := newTestStore(t)
	backend.FailWrites = errors.New("quota exceeded")

	// The write is dropped and logged; the caller sees no error.
	if err := s.SaveTransaction(expense("t1", "Food & Dining", "Lunch", "2024-05-01", 12)); err != nil {
		t.Fatalf("degraded write must not surface: %v", err)
	}

	backend.FailWrites = nil
	if got := s.Transactions(); len(got) != 0 {
		t.Errorf("dropped write still persisted something: %v", got)
	}
}

func TestStore_CallersGetCopies(t *testing.T) {
	s, _ := newTestStore(t)
	tx := expense("t1", "Food & Dining", "Lunch", "2024-05-01", 12)
	tx.Tags = []string{"work"}
	if err := s.SaveTransaction(tx); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.Transactions()
	got[0].Description = "mutated"
	got[0].Tags[0] = "mutated"

	fresh := s.Transactions()
	if fresh[0].Description != "Lunch" || fresh[0].Tags[0] != "work" {
		t.Error("mutating a returned record leaked into stored state")
	}
}

func TestSettings_SaveAndReload(t *testing.T) {
	s, _ := newTestStore(t)
	settings := s.Settings()
	settings.Currency = "EUR"
	settings.Theme = Dark
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Settings(); got.Currency != "EUR" || got.Theme != Dark {
		t.Errorf("got %+v, want the saved settings", got)
	}
}

func TestStore_OtherCollections(t *testing.T) {
	s, _ := newTestStore(t)

	shop := Shop{ID: "s1", Name: "Corner Market", Category: "Food & Dining",
		TotalSpent: decimal.NewFromInt(0)}
	if err := s.SaveShop(shop); err != nil {
		t.Fatalf("save shop: %v", err)
	}
	goal := SavingsGoal{ID: "g1", Name: "Vacation", TargetAmount: decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(0),
		Deadline:      date.MustParse("2025-06-01"), Category: "Travel", Priority: High}
	if err := s.SaveSavingsGoal(goal); err != nil {
		t.Fatalf("save goal: %v", err)
	}
	budget := Budget{ID: "b1", Category: "Food & Dining", Amount: decimal.NewFromInt(500),
		Spent:  decimal.NewFromInt(0),
		Period: date.Monthly, StartDate: date.MustParse("2024-05-01"), EndDate: date.MustParse("2024-05-31")}
	if err := s.SaveBudget(budget); err != nil {
		t.Fatalf("save budget: %v", err)
	}
	list := GroceryList{ID: "l1", Name: "Weekly", CreatedDate: date.MustParse("2024-05-01"),
		TotalEstimated: decimal.NewFromInt(0),
		Items:          []GroceryItem{{ID: "i1", Name: "Milk", Category: "Dairy", Quantity: decimal.NewFromInt(2), Unit: "l"}}}
	if err := s.SaveGroceryList(list); err != nil {
		t.Fatalf("save list: %v", err)
	}
	loan := Loan{ID: "n1", Name: "Car", TotalAmount: decimal.NewFromInt(10000),
		RemainingAmount: decimal.NewFromInt(4000), InterestRate: decimal.NewFromFloat(3.5),
		MonthlyPayment: decimal.NewFromInt(250), StartDate: date.MustParse("2023-01-01"),
		EndDate: date.MustParse("2027-01-01"), Lender: "Bank", Type: Auto,
		NextPaymentDate: date.MustParse("2024-06-01")}
	if err := s.SaveLoan(loan); err != nil {
		t.Fatalf("save loan: %v", err)
	}

	if got := s.Shops(); len(got) != 1 || !reflect.DeepEqual(got[0], shop) {
		t.Errorf("shops: got %+v", got)
	}
	if got := s.SavingsGoals(); len(got) != 1 || !reflect.DeepEqual(got[0], goal) {
		t.Errorf("goals: got %+v", got)
	}
	if got := s.Budgets(); len(got) != 1 || !reflect.DeepEqual(got[0], budget) {
		t.Errorf("budgets: got %+v", got)
	}
	if got := s.GroceryLists(); len(got) != 1 || !reflect.DeepEqual(got[0], list) {
		t.Errorf("lists: got %+v", got)
	}
	if got := s.Loans(); len(got) != 1 || !reflect.DeepEqual(got[0], loan) {
		t.Errorf("loans: got %+v", got)
	}

	s.DeleteShop("s1")
	s.DeleteSavingsGoal("g1")
	s.DeleteBudget("b1")
	s.DeleteGroceryList("l1")
	s.DeleteLoan("n1")
	if len(s.Shops())+len(s.SavingsGoals())+len(s.Budgets())+len(s.GroceryLists())+len(s.Loans()) != 0 {
		t.Error("deletes left records behind")
	}
}

func TestSaveBudget_RejectsInvertedDates(t *testing.T) {
	s, _ := newTestStore(t)
	b := Budget{ID: "b1", Category: "Food & Dining", Amount: decimal.NewFromInt(100),
		Period: date.Monthly, StartDate: date.MustParse("2024-05-31"), EndDate: date.MustParse("2024-05-01")}
	var verr *ValidationError
	if err := s.SaveBudget(b); !errors.As(err, &verr) {
		t.Fatalf("got %v, want a validation error on endDate", err)
	}
}

func TestSaveLoan_RejectsRemainingAboveTotal(t *testing.T) {
	s, _ := newTestStore(t)
	l := Loan{ID: "n1", Name: "Car", TotalAmount: decimal.NewFromInt(1000),
		RemainingAmount: decimal.NewFromInt(2000), MonthlyPayment: decimal.NewFromInt(50),
		StartDate: date.MustParse("2024-01-01"), EndDate: date.MustParse("2025-01-01"), Lender: "Bank"}
	var verr *ValidationError
	if err := s.SaveLoan(l); !errors.As(err, &verr) {
		t.Fatalf("got %v, want a validation error on remainingAmount", err)
	}
}
