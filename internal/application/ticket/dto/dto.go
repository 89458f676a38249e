package dto

import "time"

// IssueTicketRequest describes a ticket to commit. References may come in
// as catalog IDs, free text, or both; IDs win and fill the snapshot from
// the catalog row.
type IssueTicketRequest struct {
	Direction    string  `json:"direction" binding:"required"`
	JobID        *uint   `json:"job_id"`
	JobCode      string  `json:"job_code"`
	JobName      string  `json:"job_name"`
	Customer     string  `json:"customer"`
	TruckID      *uint   `json:"truck_id"`
	TruckNumber  string  `json:"truck_number"`
	MaterialID   *uint   `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit" binding:"required"`
	Notes        string  `json:"notes"`
	// CreatedAt backdates the ticket, for entries keyed in after the
	// fact. Empty means now.
	CreatedAt *time.Time `json:"created_at"`
	Print     bool       `json:"print"`
}

// TicketResponse is the external view of a committed ticket.
type TicketResponse struct {
	ID           uint      `json:"id"`
	TicketNumber string    `json:"ticket_number"`
	Year         int       `json:"year"`
	Sequence     int       `json:"sequence"`
	Direction    string    `json:"direction"`
	CreatedAt    time.Time `json:"created_at"`
	JobID        *uint     `json:"job_id,omitempty"`
	JobCode      string    `json:"job_code"`
	JobName      string    `json:"job_name"`
	Customer     string    `json:"customer,omitempty"`
	TruckID      *uint     `json:"truck_id,omitempty"`
	TruckNumber  string    `json:"truck_number"`
	MaterialID   *uint     `json:"material_id,omitempty"`
	MaterialName string    `json:"material_name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Notes        string    `json:"notes,omitempty"`
	DocumentPath string    `json:"document_path"`
	PrintWarning string    `json:"print_warning,omitempty"`
}

// SearchTicketsRequest narrows a ticket search. Dates are business-day
// bounds in YYYY-MM-DD form, both inclusive.
type SearchTicketsRequest struct {
	Number       string `form:"number"`
	JobCode      string `form:"job_code"`
	TruckNumber  string `form:"truck_number"`
	MaterialName string `form:"material_name"`
	Direction    string `form:"direction"`
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

// ReportRequest bounds a report. Missing dates default to the most recent
// two weeks of business days.
type ReportRequest struct {
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	Direction    string `form:"direction"`
	JobCode      string `form:"job_code"`
	MaterialName string `form:"material_name"`
	// Print sends the rendered report document to the printer as well.
	Print bool `form:"print"`
}

// UnitTotalResponse is an aggregate of quantity per unit.
type UnitTotalResponse struct {
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

// MaterialTotalResponse is an aggregate of quantity per material and unit.
type MaterialTotalResponse struct {
	MaterialName  string  `json:"material_name"`
	Unit          string  `json:"unit"`
	TotalQuantity float64 `json:"total_quantity"`
}

// ReportResponse is the report listing plus its aggregates.
type ReportResponse struct {
	DateFrom       string                  `json:"date_from"`
	DateTo         string                  `json:"date_to"`
	Tickets        []TicketResponse        `json:"tickets"`
	UnitTotals     []UnitTotalResponse     `json:"unit_totals"`
	MaterialTotals []MaterialTotalResponse `json:"material_totals"`
}
