package orders

import "time"

// CutoffHour separates one trading day from the next: anything placed
// before 04:00 local still belongs to the previous day's shift.
const CutoffHour = 4

// DateLayout is the stable serialization for business dates. Persisted
// values must never use locale-dependent formatting.
const DateLayout = "2006-01-02"

// BusinessDateOf maps a timestamp to the trading day it belongs to.
func BusinessDateOf(t time.Time) string {
	if t.Hour() < CutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(DateLayout)
}

// CutoffInstant returns the 04:00 local instant of the given business date.
// Orders created before it no longer belong to an open shift.
func CutoffInstant(businessDate string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, businessDate, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(CutoffHour * time.Hour), nil
}
