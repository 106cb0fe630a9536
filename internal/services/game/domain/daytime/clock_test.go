package daytime

import (
	"testing"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		mins int
	}{
		{in: "00:00", want: "00:00", mins: 0},
		{in: "08:05", want: "08:05", mins: 485},
		{in: "8:05", want: "08:05", mins: 485},
		{in: "23:59", want: "23:59", mins: 1439},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if c.String() != tt.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", tt.in, c.String(), tt.want)
		}
		if c.Minutes() != tt.mins {
			t.Fatalf("Parse(%q).Minutes() = %d, want %d", tt.in, c.Minutes(), tt.mins)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "12-30", "1:5", "ab:cd", "123:00", "08:+5", "+8:00", "-0:30", "8:-1"} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
		if !apperrors.IsCode(err, apperrors.CodeTimeInvalid) {
			t.Fatalf("Parse(%q) code = %s, want %s", in, apperrors.GetCode(err), apperrors.CodeTimeInvalid)
		}
	}
}

func TestAdvanceWrapsPastMidnight(t *testing.T) {
	got, days, err := AdvanceDays("23:50", 20)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if got != "00:10" {
		t.Fatalf("advance = %q, want %q", got, "00:10")
	}
	if days != 1 {
		t.Fatalf("days crossed = %d, want 1", days)
	}
}

func TestAdvanceTable(t *testing.T) {
	tests := []struct {
		current string
		delta   int
		want    string
		days    int
	}{
		{current: "08:00", delta: 0, want: "08:00"},
		{current: "08:00", delta: 30, want: "08:30"},
		{current: "00:00", delta: 1440, want: "00:00", days: 1},
		{current: "12:00", delta: 3 * 1440, want: "12:00", days: 3},
		{current: "21:30", delta: 150, want: "00:00", days: 1},
	}
	for _, tt := range tests {
		got, days, err := AdvanceDays(tt.current, tt.delta)
		if err != nil {
			t.Fatalf("AdvanceDays(%q, %d): %v", tt.current, tt.delta, err)
		}
		if got != tt.want || days != tt.days {
			t.Fatalf("AdvanceDays(%q, %d) = (%q, %d), want (%q, %d)", tt.current, tt.delta, got, days, tt.want, tt.days)
		}
	}
}

func TestAdvanceIsAssociative(t *testing.T) {
	for start := 0; start < MinutesPerDay; start += 97 {
		current := Clock(start).String()
		for _, pair := range [][2]int{{20, 40}, {1439, 2}, {0, 1500}, {600, 900}} {
			a, b := pair[0], pair[1]
			step, err := Advance(current, a)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			twoSteps, err := Advance(step, b)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			oneStep, err := Advance(current, a+b)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			if twoSteps != oneStep {
				t.Fatalf("advance(advance(%s, %d), %d) = %s, advance(%s, %d) = %s", current, a, b, twoSteps, current, a+b, oneStep)
			}
		}
	}
}

func TestAdvanceRejectsNegativeDelta(t *testing.T) {
	_, err := Advance("08:00", -5)
	if !apperrors.IsCode(err, apperrors.CodeTimeCostNegative) {
		t.Fatalf("code = %s, want %s", apperrors.GetCode(err), apperrors.CodeTimeCostNegative)
	}
}

func TestAdvanceRejectsMalformedTime(t *testing.T) {
	if _, err := Advance("noon", 5); !apperrors.IsCode(err, apperrors.CodeTimeInvalid) {
		t.Fatalf("code = %s, want %s", apperrors.GetCode(err), apperrors.CodeTimeInvalid)
	}
}

func TestClockAddBackwards(t *testing.T) {
	next, days := MustParse("00:05").Add(-10)
	if next.String() != "23:55" || days != -1 {
		t.Fatalf("Add(-10) = (%s, %d), want (23:55, -1)", next, days)
	}
}

func TestDisplay12h(t *testing.T) {
	tests := map[string]string{
		"00:00": "12:00 AM",
		"08:05": "8:05 AM",
		"12:30": "12:30 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range tests {
		if got := MustParse(in).Display12h(); got != want {
			t.Fatalf("Display12h(%s) = %q, want %q", in, got, want)
		}
	}
}
