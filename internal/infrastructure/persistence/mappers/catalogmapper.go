package mappers

import (
	"scalehouse/internal/domain/catalog"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/infrastructure/persistence/models"
)

// CatalogMapper converts the reference-data entities (trucks, materials,
// prices, customers) to and from their persistence models.
type CatalogMapper interface {
	TruckToModel(t *catalog.Truck) *models.TruckModel
	TruckToDomain(m *models.TruckModel) *catalog.Truck
	MaterialToModel(mt *catalog.Material) *models.MaterialModel
	MaterialToDomain(m *models.MaterialModel) *catalog.Material
	PriceToModel(p *catalog.MaterialPrice) *models.MaterialPriceModel
	PriceToDomain(m *models.MaterialPriceModel) *catalog.MaterialPrice
	CustomerToModel(c *catalog.Customer) *models.CustomerModel
	CustomerToDomain(m *models.CustomerModel) *catalog.Customer
}

type catalogMapper struct{}

func NewCatalogMapper() CatalogMapper {
	return &catalogMapper{}
}

func (mp *catalogMapper) TruckToModel(t *catalog.Truck) *models.TruckModel {
	return &models.TruckModel{
		ID:          t.ID,
		TruckNumber: t.TruckNumber,
		Description: t.Description,
		TruckSize:   t.TruckSize,
		HauledBy:    t.HauledBy,
		Active:      t.Active,
	}
}

func (mp *catalogMapper) TruckToDomain(m *models.TruckModel) *catalog.Truck {
	return &catalog.Truck{
		ID:          m.ID,
		TruckNumber: m.TruckNumber,
		Description: m.Description,
		TruckSize:   m.TruckSize,
		HauledBy:    m.HauledBy,
		Active:      m.Active,
	}
}

func (mp *catalogMapper) MaterialToModel(mt *catalog.Material) *models.MaterialModel {
	return &models.MaterialModel{
		ID:           mt.ID,
		MaterialName: mt.MaterialName,
		Active:       mt.Active,
	}
}

func (mp *catalogMapper) MaterialToDomain(m *models.MaterialModel) *catalog.Material {
	return &catalog.Material{
		ID:           m.ID,
		MaterialName: m.MaterialName,
		Active:       m.Active,
	}
}

func (mp *catalogMapper) PriceToModel(p *catalog.MaterialPrice) *models.MaterialPriceModel {
	m := &models.MaterialPriceModel{
		ID:         p.ID,
		MaterialID: p.MaterialID,
		Direction:  p.Direction.String(),
		Category:   p.Category,
		Active:     p.Active,
	}
	m.Axle1, m.Axle2, m.Axle3 = p.AxlePrices[0], p.AxlePrices[1], p.AxlePrices[2]
	m.Axle4, m.Axle5, m.Axle6 = p.AxlePrices[3], p.AxlePrices[4], p.AxlePrices[5]
	m.Axle7, m.Axle8, m.Axle9 = p.AxlePrices[6], p.AxlePrices[7], p.AxlePrices[8]
	return m
}

func (mp *catalogMapper) PriceToDomain(m *models.MaterialPriceModel) *catalog.MaterialPrice {
	return &catalog.MaterialPrice{
		ID:         m.ID,
		MaterialID: m.MaterialID,
		Direction:  vo.Direction(m.Direction),
		Category:   m.Category,
		AxlePrices: [9]*float64{
			m.Axle1, m.Axle2, m.Axle3,
			m.Axle4, m.Axle5, m.Axle6,
			m.Axle7, m.Axle8, m.Axle9,
		},
		Active: m.Active,
	}
}

func (mp *catalogMapper) CustomerToModel(c *catalog.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:      c.ID,
		Name:    c.Name,
		Contact: c.Contact,
		Phone:   c.Phone,
		Notes:   c.Notes,
	}
}

func (mp *catalogMapper) CustomerToDomain(m *models.CustomerModel) *catalog.Customer {
	return &catalog.Customer{
		ID:      m.ID,
		Name:    m.Name,
		Contact: m.Contact,
		Phone:   m.Phone,
		Notes:   m.Notes,
	}
}
