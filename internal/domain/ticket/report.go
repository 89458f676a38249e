package ticket

import "time"

// ReportData is everything a rendered activity report contains.
type ReportData struct {
	From           time.Time
	To             time.Time
	GeneratedAt    time.Time
	Tickets        []*Ticket
	UnitTotals     []UnitTotal
	MaterialTotals []MaterialTotal
}
