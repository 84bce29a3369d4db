package cnp

import "time"

// decodeDate reconstructs the embedded birth date from a resolved century
// and the two-digit year/month/day codes. The candidate is built with
// time.Date and read back: any normalization (Feb 29 in a non-leap year,
// day 31 in April, month 0 or 13) shifts a component and the round-trip
// comparison rejects it. Leap-year arithmetic is entirely time.Date's.
func decodeDate(century, yearCode, monthCode, dayCode int) (time.Time, bool) {
	year := century*100 + yearCode
	d := time.Date(year, time.Month(monthCode), dayCode, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(monthCode) || d.Day() != dayCode {
		return time.Time{}, false
	}
	return d, true
}
