package daytime

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
)

// MinutesPerDay is the length of one in-game day.
const MinutesPerDay = 24 * 60

// Clock is a time of day in minutes after midnight, always in [0, 1440).
type Clock int

// Parse reads an "HH:MM" string. Single-digit hours ("8:05") are accepted.
func Parse(value string) (Clock, error) {
	value = strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 || !digits(hh) || !digits(mm) {
		return 0, invalidTimeError(value)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 23 {
		return 0, invalidTimeError(value)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes > 59 {
		return 0, invalidTimeError(value)
	}
	return Clock(hours*60 + minutes), nil
}

// digits reports whether s holds only ASCII digits. Atoi alone admits signs.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse is Parse for static tables; it panics on malformed input.
func MustParse(value string) Clock {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns minutes after midnight.
func (c Clock) Minutes() int {
	return int(c)
}

// Hour returns the hour component in [0, 23].
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component in [0, 59].
func (c Clock) Minute() int {
	return int(c) % 60
}

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Display12h formats the clock for players, e.g. "8:05 AM" or "12:30 PM".
func (c Clock) Display12h() string {
	suffix := "AM"
	if c.Hour() >= 12 {
		suffix = "PM"
	}
	hour := c.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute(), suffix)
}

// Add moves the clock forward by delta minutes and reports how many
// midnights were crossed. Negative deltas move backwards and report zero or
// a negative day count.
func (c Clock) Add(delta int) (Clock, int) {
	total := int(c) + delta
	days := total / MinutesPerDay
	if total < 0 && total%MinutesPerDay != 0 {
		days--
	}
	return Clock(wrap(total)), days
}

// Advance adds deltaMinutes to an "HH:MM" time and returns the wrapped
// "HH:MM" result. Time only moves forward, so a negative delta is rejected.
func Advance(current string, deltaMinutes int) (string, error) {
	next, _, err := AdvanceDays(current, deltaMinutes)
	if err != nil {
		return "", err
	}
	return next, nil
}

// AdvanceDays is Advance that also reports the number of day boundaries
// crossed.
func AdvanceDays(current string, deltaMinutes int) (string, int, error) {
	if deltaMinutes < 0 {
		return "", 0, apperrors.WithMetadata(
			apperrors.CodeTimeCostNegative,
			fmt.Sprintf("time delta must not be negative: %d", deltaMinutes),
			map[string]string{"Delta": strconv.Itoa(deltaMinutes)},
		)
	}
	c, err := Parse(current)
	if err != nil {
		return "", 0, err
	}
	next, days := c.Add(deltaMinutes)
	return next.String(), days, nil
}

func wrap(minutes int) int {
	return ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}

func invalidTimeError(value string) error {
	return apperrors.WithMetadata(
		apperrors.CodeTimeInvalid,
		fmt.Sprintf("invalid time of day %q", value),
		map[string]string{"Time": value},
	)
}
