package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"scalehouse/internal/domain/catalog"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/infrastructure/persistence/mappers"
	"scalehouse/internal/infrastructure/persistence/models"
	sharederrors "scalehouse/internal/shared/errors"
)

type MaterialRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewMaterialRepository(database *gorm.DB) *MaterialRepository {
	return &MaterialRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *MaterialRepository) Create(ctx context.Context, m *catalog.Material) error {
	model := r.mapper.MaterialToModel(m)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateKeyError(err) {
			return sharederrors.NewDuplicateKeyError(
				fmt.Sprintf("material %s already exists", m.MaterialName))
		}
		return fmt.Errorf("failed to create material: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*catalog.Material, error) {
	var model models.MaterialModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(fmt.Sprintf("material %d not found", id))
		}
		return nil, fmt.Errorf("failed to find material: %w", err)
	}
	return r.mapper.MaterialToDomain(&model), nil
}

func (r *MaterialRepository) FindByName(ctx context.Context, materialName string) (*catalog.Material, error) {
	var model models.MaterialModel
	err := r.db.WithContext(ctx).Where("material_name = ?", materialName).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(
				fmt.Sprintf("material %s not found", materialName))
		}
		return nil, fmt.Errorf("failed to find material: %w", err)
	}
	return r.mapper.MaterialToDomain(&model), nil
}

func (r *MaterialRepository) List(ctx context.Context, includeInactive bool) ([]*catalog.Material, error) {
	query := r.db.WithContext(ctx).Model(&models.MaterialModel{}).Order("material_name")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var modelList []models.MaterialModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*catalog.Material, 0, len(modelList))
	for i := range modelList {
		materials = append(materials, r.mapper.MaterialToDomain(&modelList[i]))
	}
	return materials, nil
}

func (r *MaterialRepository) ToggleActive(ctx context.Context, id uint) (*catalog.Material, error) {
	var model models.MaterialModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return sharederrors.NewNotFoundError(fmt.Sprintf("material %d not found", id))
			}
			return fmt.Errorf("failed to find material: %w", err)
		}
		model.Active = !model.Active
		if err := tx.Model(&model).UpdateColumn("active", model.Active).Error; err != nil {
			return fmt.Errorf("failed to toggle material: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.MaterialToDomain(&model), nil
}

type MaterialPriceRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewMaterialPriceRepository(database *gorm.DB) *MaterialPriceRepository {
	return &MaterialPriceRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *MaterialPriceRepository) ListByMaterial(ctx context.Context, materialID uint, direction vo.Direction) ([]*catalog.MaterialPrice, error) {
	var modelList []models.MaterialPriceModel
	err := r.db.WithContext(ctx).
		Where("material_id = ? AND direction = ? AND active = ?", materialID, direction.String(), true).
		Order("category").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list material prices: %w", err)
	}

	prices := make([]*catalog.MaterialPrice, 0, len(modelList))
	for i := range modelList {
		prices = append(prices, r.mapper.PriceToDomain(&modelList[i]))
	}
	return prices, nil
}
