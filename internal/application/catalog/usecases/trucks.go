package usecases

import (
	"context"
	"fmt"
	"strings"

	"scalehouse/internal/application/catalog/dto"
	"scalehouse/internal/domain/catalog"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
)

// TruckUseCases groups the truck catalog operations.
type TruckUseCases struct {
	repo   catalog.TruckRepository
	logger logger.Interface
}

func NewTruckUseCases(repo catalog.TruckRepository, logger logger.Interface) *TruckUseCases {
	return &TruckUseCases{repo: repo, logger: logger}
}

func (uc *TruckUseCases) Create(ctx context.Context, request dto.CreateTruckRequest) (*dto.TruckResponse, error) {
	truckNumber := strings.TrimSpace(request.TruckNumber)
	if truckNumber == "" {
		return nil, errors.NewValidationError("truck number is required")
	}

	truck := &catalog.Truck{
		TruckNumber: truckNumber,
		Description: strings.TrimSpace(request.Description),
		TruckSize:   strings.TrimSpace(request.TruckSize),
		HauledBy:    strings.TrimSpace(request.HauledBy),
		Active:      true,
	}
	if err := uc.repo.Create(ctx, truck); err != nil {
		return nil, err
	}

	uc.logger.Infow("truck created", "truck_number", truck.TruckNumber)
	return toTruckResponse(truck), nil
}

func (uc *TruckUseCases) List(ctx context.Context, includeInactive bool) ([]dto.TruckResponse, error) {
	trucks, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	responses := make([]dto.TruckResponse, 0, len(trucks))
	for _, truck := range trucks {
		responses = append(responses, *toTruckResponse(truck))
	}
	return responses, nil
}

func (uc *TruckUseCases) ToggleActive(ctx context.Context, id uint) (*dto.TruckResponse, error) {
	truck, err := uc.repo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("truck toggled", "truck_number", truck.TruckNumber, "active", truck.Active)
	return toTruckResponse(truck), nil
}

func toTruckResponse(truck *catalog.Truck) *dto.TruckResponse {
	return &dto.TruckResponse{
		ID:          truck.ID,
		TruckNumber: truck.TruckNumber,
		Description: truck.Description,
		TruckSize:   truck.TruckSize,
		HauledBy:    truck.HauledBy,
		Active:      truck.Active,
	}
}
