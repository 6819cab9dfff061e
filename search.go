package homeledger

import "strings"

// Search returns the transactions whose description, category or shop name
// contains the query, case-insensitively. A transaction without a shop never
// matches on the shop field. The empty query matches everything, and the
// original relative order is preserved.
func Search(transactions []Transaction, query string) []Transaction {
	q := strings.ToLower(query)
	var out []Transaction
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) ||
			(t.Shop != "" && strings.Contains(strings.ToLower(t.Shop), q)) {
			out = append(out, t)
		}
	}
	return out
}
