// Package pickup derives the pick-up deadline for an order from the time it
// was placed. The kitchen promises a two hour lead time but closes pickup at
// 18:59:59; orders placed after the 19:00 hour roll over to the next day.
package pickup

import "time"

const (
	leadTime  = 2 * time.Hour
	lastHour  = 19 // orders landing past this hour get capped
	capHour   = 18
	capMinute = 59
	capSecond = 59
)

// By returns the pick-up deadline for an order placed at t.
//
// The cap fires only when the computed hour is strictly greater than 19:
// a 19:00-19:59 pickup stands, a 20:00+ one is pulled back to 18:59:59.
func By(t time.Time) time.Time {
	if t.Hour() > lastHour {
		next := t.AddDate(0, 0, 1)
		return capped(next)
	}
	candidate := t.Add(leadTime)
	if candidate.Hour() > lastHour {
		return capped(candidate)
	}
	return candidate
}

// capped keeps d's calendar day and sets the time of day to 18:59:59.
func capped(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), capHour, capMinute, capSecond, 0, d.Location())
}
