package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	// Feb 30 normalizes into March.
	d := New(2025, time.February, 30)
	if got, want := d.String(), "2025-03-02"; got != want {
		t.Errorf("New(2025, February, 30) = %s, want %s", got, want)
	}
}

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{"one month", "2025-01-15", 1, "2025-02-15"},
		{"quarter", "2025-01-15", 3, "2025-04-15"},
		{"across year end", "2025-11-10", 3, "2026-02-10"},
		{"end of month rolls over", "2025-01-31", 1, "2025-03-03"},
		{"twelve months", "2025-06-01", 12, "2026-06-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.start).AddMonths(tc.months)
			if got.String() != tc.want {
				t.Errorf("%s.AddMonths(%d) = %s, want %s", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	got := MustParse("2025-02-28").AddYears(1)
	if got.String() != "2026-02-28" {
		t.Errorf("AddYears(1) = %s, want 2026-02-28", got)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-07-01", "2025-07-01", false},
		{"2025-7-1", "2025-07-01", false}, // permissive format
		{"not-a-date", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 31)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(b) != `"2025-08-31"` {
		t.Errorf("Marshal() = %s, want %q", b, "2025-08-31")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2025-01-01"), MustParse("2025-01-31"))
	if !r.Contains(MustParse("2025-01-01")) || !r.Contains(MustParse("2025-01-31")) {
		t.Error("range bounds should be inclusive")
	}
	if r.Contains(MustParse("2025-02-01")) {
		t.Error("range should not contain a date after To")
	}
}

func TestMonthOf(t *testing.T) {
	r := MonthOf(MustParse("2025-02-14"))
	if r.From.String() != "2025-02-01" || r.To.String() != "2025-02-28" {
		t.Errorf("MonthOf(2025-02-14) = [%s, %s]", r.From, r.To)
	}
}
