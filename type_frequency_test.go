package finbook

import (
	"testing"

	"github.com/etnz/finbook/date"
)

func TestFrequency_Next(t *testing.T) {
	testCases := []struct {
		name string
		freq Frequency
		from string
		want string
	}{
		{"monthly", Monthly, "2025-01-15", "2025-02-15"},
		{"quarterly", Quarterly, "2025-01-15", "2025-04-15"},
		{"yearly", Yearly, "2025-01-15", "2026-01-15"},
		// normalized calendar arithmetic: Feb 30 rolls over into March
		{"quarterly across year end", Quarterly, "2025-11-30", "2026-03-02"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.freq.Next(date.MustParse(tc.from))
			if err != nil {
				t.Fatalf("Next() failed: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("%s.Next(%s) = %s, want %s", tc.freq, tc.from, got, tc.want)
			}
		})
	}
}

func TestFrequency_OneTimeIsTerminal(t *testing.T) {
	got, err := OneTime.Next(date.MustParse("2025-01-15"))
	if err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if got != Terminal {
		t.Errorf("One-Time next occurrence = %s, want terminal %s", got, Terminal)
	}
	if !got.After(date.New(2200, 1, 1)) {
		t.Error("terminal date must be beyond any realistic now")
	}
}

func TestFrequency_UnknownIsError(t *testing.T) {
	if _, err := Frequency("Fortnightly").Next(date.MustParse("2025-01-15")); err == nil {
		t.Error("unknown frequency must not be silently advanced")
	}
}

func TestParseFrequency(t *testing.T) {
	testCases := []struct {
		in      string
		want    Frequency
		wantErr bool
	}{
		{"Monthly", Monthly, false},
		{"monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"yearly", Yearly, false},
		{"One-Time", OneTime, false},
		{"once", OneTime, false},
		{"daily", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseFrequency(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFrequency(%q) expected an error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFrequency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
