package homeledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// this file implements the import/export format: one human-readable JSON
// document carrying every collection plus the settings singleton. It is the
// sole interchange format and must round-trip losslessly.

// Snapshot is the external representation of a whole store. Nil sections are
// absent from the document; on import an absent section leaves the matching
// collection untouched.
type Snapshot struct {
	Transactions *[]Transaction `json:"transactions,omitempty"`
	Categories   *[]Category    `json:"categories,omitempty"`
	Shops        *[]Shop        `json:"shops,omitempty"`
	SavingsGoals *[]SavingsGoal `json:"savingsGoals,omitempty"`
	Budgets      *[]Budget      `json:"budgets,omitempty"`
	GroceryLists *[]GroceryList `json:"groceryLists,omitempty"`
	Loans        *[]Loan        `json:"loans,omitempty"`
	Settings     *Settings      `json:"settings,omitempty"`
	ExportDate   string         `json:"exportDate"`
}

// Export serializes the full state of the store into an indented snapshot
// document, stamped with the export time.
func Export(s *Store) ([]byte, error) {
	transactions := s.Transactions()
	categories := s.Categories()
	shops := s.Shops()
	goals := s.SavingsGoals()
	budgets := s.Budgets()
	lists := s.GroceryLists()
	loans := s.Loans()
	settings := s.Settings()

	snapshot := Snapshot{
		Transactions: &transactions,
		Categories:   &categories,
		Shops:        &shops,
		SavingsGoals: &goals,
		Budgets:      &budgets,
		GroceryLists: &lists,
		Loans:        &loans,
		Settings:     &settings,
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode snapshot: %w", err)
	}
	return data, nil
}

// Import parses a snapshot document and replaces, wholesale, every
// collection whose section is present. Absent sections are left untouched;
// a partial document is a valid import, not an error. Unrecognized keys are
// ignored.
//
// The document is parsed in full before anything is written, so a malformed
// snapshot leaves the store exactly as it was.
func Import(s *Store, data []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("could not parse snapshot: %w", err)
	}

	if snapshot.Transactions != nil {
		s.write(keyTransactions, *snapshot.Transactions)
	}
	if snapshot.Categories != nil {
		s.write(keyCategories, *snapshot.Categories)
	}
	if snapshot.Shops != nil {
		s.write(keyShops, *snapshot.Shops)
	}
	if snapshot.SavingsGoals != nil {
		s.write(keySavingsGoals, *snapshot.SavingsGoals)
	}
	if snapshot.Budgets != nil {
		s.write(keyBudgets, *snapshot.Budgets)
	}
	if snapshot.GroceryLists != nil {
		s.write(keyGroceryLists, *snapshot.GroceryLists)
	}
	if snapshot.Loans != nil {
		s.write(keyLoans, *snapshot.Loans)
	}
	if snapshot.Settings != nil {
		s.write(keySettings, *snapshot.Settings)
	}
	return nil
}
