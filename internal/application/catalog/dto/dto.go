package dto

// CreateTruckRequest adds a truck to the catalog.
type CreateTruckRequest struct {
	TruckNumber string `json:"truck_number" binding:"required"`
	Description string `json:"description"`
	TruckSize   string `json:"truck_size"`
	HauledBy    string `json:"hauled_by"`
}

// TruckResponse is the external view of a truck.
type TruckResponse struct {
	ID          uint   `json:"id"`
	TruckNumber string `json:"truck_number"`
	Description string `json:"description,omitempty"`
	TruckSize   string `json:"truck_size,omitempty"`
	HauledBy    string `json:"hauled_by,omitempty"`
	Active      bool   `json:"active"`
}

// CreateMaterialRequest adds a material to the catalog.
type CreateMaterialRequest struct {
	MaterialName string `json:"material_name" binding:"required"`
}

// MaterialResponse is the external view of a material.
type MaterialResponse struct {
	ID           uint   `json:"id"`
	MaterialName string `json:"material_name"`
	Active       bool   `json:"active"`
}

// MaterialPriceResponse is one price sheet row for a material and
// direction. Axle prices are positional, axle 1 through 9; missing axle
// counts are null.
type MaterialPriceResponse struct {
	ID         uint       `json:"id"`
	MaterialID uint       `json:"material_id"`
	Direction  string     `json:"direction"`
	Category   string     `json:"category,omitempty"`
	AxlePrices []*float64 `json:"axle_prices"`
}

// CreateCustomerRequest adds a customer to the catalog.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// CustomerResponse is the external view of a customer.
type CustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}
