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

// CustomerUseCases groups the customer catalog operations.
type CustomerUseCases struct {
	repo   catalog.CustomerRepository
	logger logger.Interface
}

func NewCustomerUseCases(repo catalog.CustomerRepository, logger logger.Interface) *CustomerUseCases {
	return &CustomerUseCases{repo: repo, logger: logger}
}

func (uc *CustomerUseCases) Create(ctx context.Context, request dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, errors.NewValidationError("customer name is required")
	}

	customer := &catalog.Customer{
		Name:    name,
		Contact: strings.TrimSpace(request.Contact),
		Phone:   strings.TrimSpace(request.Phone),
		Notes:   strings.TrimSpace(request.Notes),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	uc.logger.Infow("customer created", "name", customer.Name)
	return toCustomerResponse(customer), nil
}

func (uc *CustomerUseCases) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, *toCustomerResponse(customer))
	}
	return responses, nil
}

func toCustomerResponse(customer *catalog.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Contact: customer.Contact,
		Phone:   customer.Phone,
		Notes:   customer.Notes,
	}
}
