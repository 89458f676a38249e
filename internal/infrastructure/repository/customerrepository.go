package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scalehouse/internal/domain/catalog"
	"scalehouse/internal/infrastructure/persistence/mappers"
	"scalehouse/internal/infrastructure/persistence/models"
	sharederrors "scalehouse/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewCustomerRepository(database *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *catalog.Customer) error {
	model := r.mapper.CustomerToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateKeyError(err) {
			return sharederrors.NewDuplicateKeyError(
				fmt.Sprintf("customer %s already exists", c.Name))
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	c.ID = model.ID
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*catalog.Customer, error) {
	var modelList []models.CustomerModel
	err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*catalog.Customer, 0, len(modelList))
	for i := range modelList {
		customers = append(customers, r.mapper.CustomerToDomain(&modelList[i]))
	}
	return customers, nil
}
