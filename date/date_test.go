package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNew_Normalizes(t *testing.T) {
	testCases := []struct {
		name string
		got  Date
		want string
	}{
		{"regular day", New(2024, time.May, 15), "2024-05-15"},
		{"day overflow", New(2024, time.February, 31), "2024-03-02"},
		{"month overflow", New(2024, time.Month(13), 1), "2025-01-01"},
		{"day zero is previous month end", New(2024, time.March, 0), "2024-02-29"},
	}
	for _, tc := range testCases {
		if got := tc.got.String(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestStartOfEndOf(t *testing.T) {
	// 2024-05-15 is a Wednesday.
	d := MustParse("2024-05-15")

	testCases := []struct {
		period    Period
		wantStart string
		wantEnd   string
	}{
		{Daily, "2024-05-15", "2024-05-15"},
		{Weekly, "2024-05-12", "2024-05-18"}, // Sunday through Saturday
		{Monthly, "2024-05-01", "2024-05-31"},
		{Yearly, "2024-01-01", "2024-12-31"},
	}
	for _, tc := range testCases {
		if got := d.StartOf(tc.period).String(); got != tc.wantStart {
			t.Errorf("StartOf(%s): got %s, want %s", tc.period, got, tc.wantStart)
		}
		if got := d.EndOf(tc.period).String(); got != tc.wantEnd {
			t.Errorf("EndOf(%s): got %s, want %s", tc.period, got, tc.wantEnd)
		}
	}
}

func TestStartOfWeekly_OnSunday(t *testing.T) {
	// A Sunday is already the start of its own week.
	sunday := MustParse("2024-05-12")
	if got := sunday.StartOf(Weekly); got != sunday {
		t.Errorf("got %s, want %s", got, sunday)
	}
	if got := sunday.EndOf(Weekly).String(); got != "2024-05-18" {
		t.Errorf("got %s, want 2024-05-18", got)
	}
}

func TestEndOfMonthly_February(t *testing.T) {
	if got := MustParse("2024-02-10").EndOf(Monthly).String(); got != "2024-02-29" {
		t.Errorf("leap year: got %s, want 2024-02-29", got)
	}
	if got := MustParse("2023-02-10").EndOf(Monthly).String(); got != "2023-02-28" {
		t.Errorf("regular year: got %s, want 2023-02-28", got)
	}
}

func TestAddMonth_Rollover(t *testing.T) {
	testCases := []struct {
		from string
		want string
	}{
		{"2024-01-31", "2024-03-02"}, // Feb 2024 has 29 days
		{"2023-01-31", "2023-03-03"}, // Feb 2023 has 28 days
		{"2024-04-15", "2024-05-15"},
		{"2024-12-10", "2025-01-10"},
	}
	for _, tc := range testCases {
		if got := MustParse(tc.from).AddMonth(1).String(); got != tc.want {
			t.Errorf("AddMonth(%s): got %s, want %s", tc.from, got, tc.want)
		}
	}
}

func TestAddYear_LeapDay(t *testing.T) {
	if got := MustParse("2024-02-29").AddYear(1).String(); got != "2025-03-01" {
		t.Errorf("got %s, want 2025-03-01", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("got %s, want 2025-07-01", d)
	}
	if _, err := Parse("not a date"); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2024-05-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-05-15"` {
		t.Errorf("got %s, want \"2024-05-15\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %s, want %s", back, d)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2024-05-15"), Monthly)
	testCases := []struct {
		date string
		want bool
	}{
		{"2024-05-01", true}, // boundaries are inclusive
		{"2024-05-31", true},
		{"2024-04-30", false},
		{"2024-06-01", false},
		{"2024-05-15", true},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.date)); got != tc.want {
			t.Errorf("Contains(%s): got %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Monthly", Monthly, false},
		{"year", Yearly, false},
		{"quarterly", Daily, true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePeriod(%q): unexpected error state: %v", tc.in, err)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParsePeriod(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
}
