// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is used only to
// derive the ticket year and inclusive date-range boundaries for search and
// reporting, so that a ticket issued late in the evening lands in the day
// and year the scale house operates in.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/New_York"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with
// the default when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// TicketYear derives the sequence year for a ticket created at t.
func TicketYear(t time.Time) int {
	return t.In(Location()).Year()
}

// StartOfDay returns the first instant of t's business day, in UTC.
func StartOfDay(t time.Time) time.Time {
	bt := t.In(Location())
	return time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDay returns the last instant of t's business day, in UTC. The end
// is derived from the next calendar day's start rather than a fixed 24h
// offset, so DST transition days keep their 23- or 25-hour span.
func EndOfDay(t time.Time) time.Time {
	bt := t.In(Location())
	nextDay := time.Date(bt.Year(), bt.Month(), bt.Day()+1, 0, 0, 0, 0, Location())
	return nextDay.Add(-time.Nanosecond).UTC()
}
