package domain

import "time"

const (
	// DateLayout is how dates are stored, so that text comparison in SQL
	// follows calendar order.
	DateLayout = "2006-01-02"
	// DisplayLayout is how dates are shown and typed (DD/MM/YYYY).
	DisplayLayout = "02/01/2006"

	// PeriodDays is the width of a metrics period. It is a fixed 31 days
	// from the start date, not a calendar month.
	PeriodDays = 31
)

// FormatDate renders t in storage form; the zero time becomes "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DisplayDate turns a stored date into DD/MM/YYYY. Values that are not in
// storage form are returned unchanged.
func DisplayDate(stored string) string {
	t, err := time.Parse(DateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(DisplayLayout)
}

// Period is a half-open window [Start, End()) over sale dates.
type Period struct {
	Start time.Time
}

// MonthStarting returns the period that begins on the first day of month.
func MonthStarting(year int, month time.Month) Period {
	return Period{Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

func (p Period) End() time.Time { return p.Start.AddDate(0, 0, PeriodDays) }

// Bounds returns the window in storage form, ready for SQL comparison.
func (p Period) Bounds() (from, to string) {
	return FormatDate(p.Start), FormatDate(p.End())
}

func (p Period) String() string { return p.Start.Format(DisplayLayout) }
