package usecases

import (
	"context"
	"fmt"
	"strings"

	"scalehouse/internal/application/catalog/dto"
	"scalehouse/internal/domain/catalog"
	vo "scalehouse/internal/domain/ticket/valueobjects"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// MaterialUseCases groups the material catalog operations.
type MaterialUseCases struct {
	repo      catalog.MaterialRepository
	priceRepo catalog.MaterialPriceRepository
	logger    logger.Interface
}

func NewMaterialUseCases(
	repo catalog.MaterialRepository,
	priceRepo catalog.MaterialPriceRepository,
	logger logger.Interface,
) *MaterialUseCases {
	return &MaterialUseCases{repo: repo, priceRepo: priceRepo, logger: logger}
}

func (uc *MaterialUseCases) Create(ctx context.Context, request dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	materialName := strings.TrimSpace(request.MaterialName)
	if materialName == "" {
		return nil, errors.NewValidationError("material name is required")
	}

	material := &catalog.Material{
		MaterialName: materialName,
		Active:       true,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}

	uc.logger.Infow("material created", "material_name", material.MaterialName)
	return toMaterialResponse(material), nil
}

func (uc *MaterialUseCases) List(ctx context.Context, includeInactive bool) ([]dto.MaterialResponse, error) {
	materials, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for _, material := range materials {
		responses = append(responses, *toMaterialResponse(material))
	}
	return responses, nil
}

func (uc *MaterialUseCases) ToggleActive(ctx context.Context, id uint) (*dto.MaterialResponse, error) {
	material, err := uc.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("material toggled",
		"material_name", material.MaterialName, "active", material.Active)
	return toMaterialResponse(material), nil
}

// ListPrices returns the active price sheet for a material and direction.
func (uc *MaterialUseCases) ListPrices(ctx context.Context, materialID uint, directionStr string) ([]dto.MaterialPriceResponse, error) {
	direction, err := vo.NewDirection(directionStr)
	if err != nil {
		return nil, errors.NewValidationError("direction must be IN or OUT", directionStr)
	}
	if _, err := uc.repo.FindByID(ctx, materialID); err != nil {
		return nil, err
	}

	prices, err := uc.priceRepo.ListByMaterial(ctx, materialID, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to list material prices: %w", err)
	}

	responses := make([]dto.MaterialPriceResponse, 0, len(prices))
	for _, price := range prices {
		responses = append(responses, dto.MaterialPriceResponse{
			ID:         price.ID,
			MaterialID: price.MaterialID,
			Direction:  price.Direction.String(),
			Category:   price.Category,
			AxlePrices: price.AxlePrices[:],
		})
	}
	return responses, nil
}

func toMaterialResponse(material *catalog.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           material.ID,
		MaterialName: material.MaterialName,
		Active:       material.Active,
	}
}
