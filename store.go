package homeledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"homeledger/storage"
)

// Collection keys used against the storage backend. Every collection is
// persisted as one JSON document under its key.
const (
	keyTransactions = "transactions"
	keyCategories   = "categories"
	keyShops        = "shops"
	keySavingsGoals = "savings-goals"
	keyBudgets      = "budgets"
	keyGroceryLists = "grocery-lists"
	keyLoans        = "loans"
	keySettings     = "settings"
)

// record is what every stored collection element provides: an identity and
// its own invariants.
type record interface {
	Key() string
	Validate() error
}

// Store is the single point of contact with the persistence medium.
//
// Reads degrade to the collection default when the medium is missing or
// corrupt; writes that fail are logged and dropped. Neither ever reaches the
// caller as an error: the only errors a Save returns are validation
// failures, reported before anything touches the backend.
//
// Callers always get fresh copies decoded from the backend, never aliases
// into shared state. There is exactly one writer context at a time by
// construction; if that ever changes, this is the boundary to lock.
type Store struct {
	backend storage.Backend
	log     zerolog.Logger
}

// Open wires a store to its backend and seeds the default categories and
// settings if those collections were never written. Seeding happens here,
// once, rather than being recomputed on every empty read.
func Open(backend storage.Backend, logger zerolog.Logger) *Store {
	s := &Store{backend: backend, log: logger}
	if _, err := backend.Read(keyCategories); errors.Is(err, storage.ErrNotExist) {
		s.write(keyCategories, DefaultCategories())
	}
	if _, err := backend.Read(keySettings); errors.Is(err, storage.ErrNotExist) {
		s.write(keySettings, DefaultSettings())
	}
	return s
}

// write encodes and persists one collection. Failures are logged and
// swallowed: a dropped write must never crash the caller.
func (s *Store) write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("collection", key).Msg("could not encode collection, write dropped")
		return
	}
	if err := s.backend.Write(key, data); err != nil {
		s.log.Error().Err(err).Str("collection", key).Msg("could not persist collection, write dropped")
	}
}

// getAll reads one collection, falling back to its default on missing key,
// read failure or corrupt payload.
func getAll[T any](s *Store, key string, defaults func() []T) []T {
	raw, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			s.log.Error().Err(err).Str("collection", key).Msg("could not read collection, using defaults")
		}
		return defaults()
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Error().Err(err).Str("collection", key).Msg("corrupt collection, using defaults")
		return defaults()
	}
	return records
}

// upsert validates the record, then replaces the element with the same id in
// place (keeping its position) or appends it, and persists the whole
// sequence.
func upsert[T record](s *Store, key string, defaults func() []T, rec T) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	records := getAll(s, key, defaults)
	replaced := false
	for i := range records {
		if records[i].Key() == rec.Key() {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	s.write(key, records)
	return nil
}

// deleteByID removes the record with that id if present. Deleting an absent
// id is a no-op, not an error.
func deleteByID[T record](s *Store, key string, defaults func() []T, id string) {
	records := getAll(s, key, defaults)
	for i := range records {
		if records[i].Key() == id {
			records = append(records[:i], records[i+1:]...)
			s.write(key, records)
			return
		}
	}
}

func emptyOf[T any]() []T { return []T{} }

// Transactions returns all persisted transactions in their stored order.
func (s *Store) Transactions() []Transaction {
	return getAll(s, keyTransactions, emptyOf[Transaction])
}

// SaveTransaction upserts a transaction. Besides the intrinsic invariants it
// checks that the category names an existing category of the same kind.
func (s *Store) SaveTransaction(t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !s.categoryExists(t.Category, t.Kind) {
		return &ValidationError{Fields: map[string]string{
			"category": fmt.Sprintf("no %s category named %q", t.Kind, t.Category),
		}}
	}
	return upsert(s, keyTransactions, emptyOf[Transaction], t)
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id string) {
	deleteByID(s, keyTransactions, emptyOf[Transaction], id)
}

func (s *Store) categoryExists(name string, kind Kind) bool {
	for _, c := range s.Categories() {
		if c.Name == name && c.Kind == kind {
			return true
		}
	}
	return false
}

// Categories returns all categories, or the seeded defaults if the
// collection was lost.
func (s *Store) Categories() []Category {
	return getAll(s, keyCategories, DefaultCategories)
}

// SaveCategory upserts a category.
func (s *Store) SaveCategory(c Category) error {
	return upsert(s, keyCategories, DefaultCategories, c)
}

// DeleteCategory removes a category by id. Transactions referencing the
// category name are left alone.
func (s *Store) DeleteCategory(id string) {
	deleteByID(s, keyCategories, DefaultCategories, id)
}

// Shops returns all shops.
func (s *Store) Shops() []Shop { return getAll(s, keyShops, emptyOf[Shop]) }

// SaveShop upserts a shop.
func (s *Store) SaveShop(shop Shop) error { return upsert(s, keyShops, emptyOf[Shop], shop) }

// DeleteShop removes a shop by id.
func (s *Store) DeleteShop(id string) { deleteByID(s, keyShops, emptyOf[Shop], id) }

// SavingsGoals returns all savings goals.
func (s *Store) SavingsGoals() []SavingsGoal {
	return getAll(s, keySavingsGoals, emptyOf[SavingsGoal])
}

// SaveSavingsGoal upserts a savings goal.
func (s *Store) SaveSavingsGoal(g SavingsGoal) error {
	return upsert(s, keySavingsGoals, emptyOf[SavingsGoal], g)
}

// DeleteSavingsGoal removes a savings goal by id.
func (s *Store) DeleteSavingsGoal(id string) {
	deleteByID(s, keySavingsGoals, emptyOf[SavingsGoal], id)
}

// Budgets returns all budgets.
func (s *Store) Budgets() []Budget { return getAll(s, keyBudgets, emptyOf[Budget]) }

// SaveBudget upserts a budget.
func (s *Store) SaveBudget(b Budget) error { return upsert(s, keyBudgets, emptyOf[Budget], b) }

// DeleteBudget removes a budget by id.
func (s *Store) DeleteBudget(id string) { deleteByID(s, keyBudgets, emptyOf[Budget], id) }

// GroceryLists returns all grocery lists.
func (s *Store) GroceryLists() []GroceryList {
	return getAll(s, keyGroceryLists, emptyOf[GroceryList])
}

// SaveGroceryList upserts a grocery list.
func (s *Store) SaveGroceryList(l GroceryList) error {
	return upsert(s, keyGroceryLists, emptyOf[GroceryList], l)
}

// DeleteGroceryList removes a grocery list by id.
func (s *Store) DeleteGroceryList(id string) {
	deleteByID(s, keyGroceryLists, emptyOf[GroceryList], id)
}

// Loans returns all loans.
func (s *Store) Loans() []Loan { return getAll(s, keyLoans, emptyOf[Loan]) }

// SaveLoan upserts a loan.
func (s *Store) SaveLoan(l Loan) error { return upsert(s, keyLoans, emptyOf[Loan], l) }

// DeleteLoan removes a loan by id.
func (s *Store) DeleteLoan(id string) { deleteByID(s, keyLoans, emptyOf[Loan], id) }

// Settings returns the settings singleton, or the defaults if it was never
// written or cannot be read.
func (s *Store) Settings() Settings {
	raw, err := s.backend.Read(keySettings)
	if err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			s.log.Error().Err(err).Str("collection", keySettings).Msg("could not read settings, using defaults")
		}
		return DefaultSettings()
	}
	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Error().Err(err).Str("collection", keySettings).Msg("corrupt settings, using defaults")
		return DefaultSettings()
	}
	return settings
}

// SaveSettings replaces the settings singleton.
func (s *Store) SaveSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.write(keySettings, settings)
	return nil
}
