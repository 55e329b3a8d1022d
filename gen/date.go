package gen

import "time"

// Date draws a time.Time between min and max (inclusive) with the Linear
// distribution anchored at min: small sizes stay close to min and the
// whole span opens up as size reaches ConventionalSizeLimit. It shrinks
// toward min the same way an integer range shrinks toward its
// origin (spec §6's gen_date(min, max)): internally it draws a Unix
// nanosecond count with Int64 and converts it back, so Date inherits
// Int64's halving shrink sequence for free.
func Date(min, max time.Time) Generator[time.Time] {
	lo, hi := min.UnixNano(), max.UnixNano()
	if hi < lo {
		lo, hi = hi, lo
	}
	r := NewRange(lo, hi, Linear).WithOrigin(lo)
	return MapGen(Int64(r), func(ns int64) time.Time {
		return time.Unix(0, ns).UTC()
	})
}

// DateRange is Date with its bounds expressed in days relative to now,
// a convenience for the common "somewhere in the last N days" case.
func DateRange(now time.Time, pastDays, futureDays int) Generator[time.Time] {
	min := now.AddDate(0, 0, -pastDays)
	max := now.AddDate(0, 0, futureDays)
	return Date(min, max)
}
