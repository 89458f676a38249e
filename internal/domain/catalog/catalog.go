// Package catalog holds the local reference data a ticket snapshots at
// creation: trucks, materials, material pricing and customers. These rows
// are maintained through admin operations and are read-only to ticket
// issuance.
package catalog

import vo "scalehouse/internal/domain/ticket/valueobjects"

type Truck struct {
	ID          uint
	TruckNumber string
	Description string
	TruckSize   string
	HauledBy    string
	Active      bool
}

type Material struct {
	ID           uint
	MaterialName string
	Active       bool
}

// MaterialPrice is a price sheet row for a material in one direction.
// AxlePrices holds up to nine per-axle-count tiers; nil means the tier is
// not quoted.
type MaterialPrice struct {
	ID         uint
	MaterialID uint
	Direction  vo.Direction
	Category   string
	AxlePrices [9]*float64
	Active     bool
}

type Customer struct {
	ID      uint
	Name    string
	Contact string
	Phone   string
	Notes   string
}
