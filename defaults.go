package homeledger

// DefaultCategories is the category set seeded into a brand new store, and
// the fallback when the categories collection cannot be read.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Food & Dining", Kind: Expense, Color: "#ef4444", Icon: "UtensilsCrossed"},
		{ID: "2", Name: "Transportation", Kind: Expense, Color: "#f97316", Icon: "Car"},
		{ID: "3", Name: "Shopping", Kind: Expense, Color: "#eab308", Icon: "ShoppingBag"},
		{ID: "4", Name: "Entertainment", Kind: Expense, Color: "#a855f7", Icon: "Gamepad2"},
		{ID: "5", Name: "Bills & Utilities", Kind: Expense, Color: "#06b6d4", Icon: "Receipt"},
		{ID: "6", Name: "Healthcare", Kind: Expense, Color: "#ec4899", Icon: "Heart"},
		{ID: "7", Name: "Salary", Kind: Income, Color: "#22c55e", Icon: "Banknote"},
		{ID: "8", Name: "Freelance", Kind: Income, Color: "#10b981", Icon: "Briefcase"},
		{ID: "9", Name: "Investments", Kind: Income, Color: "#059669", Icon: "TrendingUp"},
		{ID: "10", Name: "Other Income", Kind: Income, Color: "#16a34a", Icon: "PlusCircle"},
	}
}

// DefaultSettings is the settings singleton of a brand new store.
func DefaultSettings() Settings {
	return Settings{
		Currency:      "USD",
		DateFormat:    "MM/dd/yyyy",
		Theme:         System,
		Notifications: true,
		BackupEnabled: false,
		Language:      "en",
	}
}
