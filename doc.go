// Package homeledger persists a personal ledger of financial records and
// derives insight from it.
//
// The package is built around three parts. The [Store] is a typed record
// store over a pluggable [homeledger/storage.Backend]: named collections of
// identity-keyed records with upsert/delete semantics, default seeding and
// degraded-read behavior that never lets a broken medium crash a caller.
// Pure derivation functions ([Summarize], [BudgetUtilization],
// [GroupByCategory], [Search], [NextOccurrence]) compute summaries from
// already-loaded records. [Export] and [Import] move the whole store through
// a single JSON snapshot document.
package homeledger
