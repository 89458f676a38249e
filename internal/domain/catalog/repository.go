package catalog

import (
	"context"

	vo "scalehouse/internal/domain/ticket/valueobjects"
)

type TruckRepository interface {
	Create(ctx context.Context, t *Truck) error
	FindByID(ctx context.Context, id uint) (*Truck, error)
	FindByNumber(ctx context.Context, truckNumber string) (*Truck, error)
	List(ctx context.Context, includeInactive bool) ([]*Truck, error)
	ToggleActive(ctx context.Context, id uint) (*Truck, error)
}

type MaterialRepository interface {
	Create(ctx context.Context, m *Material) error
	FindByID(ctx context.Context, id uint) (*Material, error)
	FindByName(ctx context.Context, materialName string) (*Material, error)
	List(ctx context.Context, includeInactive bool) ([]*Material, error)
	ToggleActive(ctx context.Context, id uint) (*Material, error)
}

type MaterialPriceRepository interface {
	ListByMaterial(ctx context.Context, materialID uint, direction vo.Direction) ([]*MaterialPrice, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context) ([]*Customer, error)
}
