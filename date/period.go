package date

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Period is a calendar period used both for budget cycles and for
// recurring-transaction schedules.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name. It accepts both the adjective and the
// noun form ("weekly" and "week").
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", s)
	}
}

// MarshalJSON persists the period under its name.
func (p Period) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Period) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParsePeriod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
