package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"scalehouse/internal/domain/catalog"
	"scalehouse/internal/infrastructure/persistence/mappers"
	"scalehouse/internal/infrastructure/persistence/models"
	sharederrors "scalehouse/internal/shared/errors"
)

type TruckRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewTruckRepository(database *gorm.DB) *TruckRepository {
	return &TruckRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *TruckRepository) Create(ctx context.Context, t *catalog.Truck) error {
	model := r.mapper.TruckToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateKeyError(err) {
			return sharederrors.NewDuplicateKeyError(
				fmt.Sprintf("truck %s already exists", t.TruckNumber))
		}
		return fmt.Errorf("failed to create truck: %w", err)
	}
	t.ID = model.ID
	return nil
}

func (r *TruckRepository) FindByID(ctx context.Context, id uint) (*catalog.Truck, error) {
	var model models.TruckModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(fmt.Sprintf("truck %d not found", id))
		}
		return nil, fmt.Errorf("failed to find truck: %w", err)
	}
	return r.mapper.TruckToDomain(&model), nil
}

func (r *TruckRepository) FindByNumber(ctx context.Context, truckNumber string) (*catalog.Truck, error) {
	var model models.TruckModel
	err := r.db.WithContext(ctx).Where("truck_number = ?", truckNumber).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(
				fmt.Sprintf("truck %s not found", truckNumber))
		}
		return nil, fmt.Errorf("failed to find truck: %w", err)
	}
	return r.mapper.TruckToDomain(&model), nil
}

func (r *TruckRepository) List(ctx context.Context, includeInactive bool) ([]*catalog.Truck, error) {
	query := r.db.WithContext(ctx).Model(&models.TruckModel{}).Order("truck_number")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var modelList []models.TruckModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	trucks := make([]*catalog.Truck, 0, len(modelList))
	for i := range modelList {
		trucks = append(trucks, r.mapper.TruckToDomain(&modelList[i]))
	}
	return trucks, nil
}

func (r *TruckRepository) ToggleActive(ctx context.Context, id uint) (*catalog.Truck, error) {
	var model models.TruckModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return sharederrors.NewNotFoundError(fmt.Sprintf("truck %d not found", id))
			}
			return fmt.Errorf("failed to find truck: %w", err)
		}
		model.Active = !model.Active
		if err := tx.Model(&model).UpdateColumn("active", model.Active).Error; err != nil {
			return fmt.Errorf("failed to toggle truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.TruckToDomain(&model), nil
}
