package homeledger

import "homeledger/date"

// NextOccurrence returns the date a recurring transaction is due again after
// its last occurrence: one day, seven days, one calendar month or one year
// later.
//
// The monthly step uses native calendar normalization, so Jan 31 plus one
// month lands on Mar 2 (Mar 3 outside leap years), not on the end of
// February. Schedules anchored to month-ends drift forward; see
// date.Date.AddMonth.
func NextOccurrence(last date.Date, period date.Period) date.Date {
	switch period {
	case date.Daily:
		return last.Add(1)
	case date.Weekly:
		return last.Add(7)
	case date.Monthly:
		return last.AddMonth(1)
	case date.Yearly:
		return last.AddYear(1)
	default:
		panic("unknown period")
	}
}
