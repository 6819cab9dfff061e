package date

import "iter"

// Range represents a range of dates, boundaries included.
//
// A Range is the day-granularity equivalent of a [start 00:00, end 23:59.999]
// interval: membership tests must use Contains, which is inclusive on both
// ends.
type Range struct{ From, To Date }

// NewRange returns the range of the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// ThisRange returns the range of the period containing today.
func ThisRange(period Period) Range { return NewRange(Today(), period) }

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
