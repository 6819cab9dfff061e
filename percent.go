package homeledger

import "fmt"

// Percent is a percentage value, e.g. a budget utilization of 42.5%.
type Percent float64

// Equal compares with a small tolerance, percentages come out of divisions.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
