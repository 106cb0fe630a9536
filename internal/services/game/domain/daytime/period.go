package daytime

// PeriodID names a block of the school day.
type PeriodID string

const (
	PeriodMorning     PeriodID = "morning"
	PeriodClass       PeriodID = "class"
	PeriodLunch       PeriodID = "lunch"
	PeriodAfternoon   PeriodID = "afternoon"
	PeriodAfterSchool PeriodID = "afterschool"
	PeriodEvening     PeriodID = "evening"
	PeriodNight       PeriodID = "night"
)

// Period is an inclusive [Start, End] window. A period whose End is before
// its Start spans midnight.
type Period struct {
	ID    PeriodID
	Label string
	Start Clock
	End   Clock
}

// Schedule is the school day in evaluation order.
var Schedule = []Period{
	{ID: PeriodMorning, Label: "Early Morning", Start: MustParse("06:00"), End: MustParse("07:59")},
	{ID: PeriodClass, Label: "Class Time", Start: MustParse("08:00"), End: MustParse("11:59")},
	{ID: PeriodLunch, Label: "Lunch Break", Start: MustParse("12:00"), End: MustParse("12:59")},
	{ID: PeriodAfternoon, Label: "Afternoon Classes", Start: MustParse("13:00"), End: MustParse("15:59")},
	{ID: PeriodAfterSchool, Label: "After School", Start: MustParse("16:00"), End: MustParse("17:59")},
	{ID: PeriodEvening, Label: "Evening", Start: MustParse("18:00"), End: MustParse("20:59")},
	{ID: PeriodNight, Label: "Night", Start: MustParse("21:00"), End: MustParse("05:59")},
}

// Contains reports whether c falls inside the period.
func (p Period) Contains(c Clock) bool {
	if p.Start > p.End {
		return c >= p.Start || c <= p.End
	}
	return c >= p.Start && c <= p.End
}

// PeriodAt returns the first scheduled period containing c.
func PeriodAt(c Clock) (Period, bool) {
	for _, p := range Schedule {
		if p.Contains(c) {
			return p, true
		}
	}
	return Period{}, false
}

// Label returns the display label of the period containing c, or "Unknown".
func Label(c Clock) string {
	if p, ok := PeriodAt(c); ok {
		return p.Label
	}
	return "Unknown"
}

// MinutesUntilNextPeriod returns how long until the period after the one
// containing c begins.
func MinutesUntilNextPeriod(c Clock) int {
	current, ok := PeriodAt(c)
	if !ok {
		return 0
	}
	next := current.End + 1
	if next >= MinutesPerDay {
		next -= MinutesPerDay
	}
	return wrap(int(next) - int(c))
}

// CanComplete reports whether an activity of duration minutes started at c
// finishes inside the period it started in.
func CanComplete(c Clock, duration int) bool {
	if duration < 0 {
		return false
	}
	return duration <= MinutesUntilNextPeriod(c)
}

// IsClassTime reports whether classes are in session at c.
func IsClassTime(c Clock) bool {
	p, ok := PeriodAt(c)
	return ok && (p.ID == PeriodClass || p.ID == PeriodAfternoon)
}

// IsNight reports whether c falls in the night period.
func IsNight(c Clock) bool {
	p, ok := PeriodAt(c)
	return ok && p.ID == PeriodNight
}
