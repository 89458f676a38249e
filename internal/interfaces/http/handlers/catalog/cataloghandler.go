package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scalehouse/internal/application/catalog/dto"
	"scalehouse/internal/application/catalog/usecases"
	"scalehouse/internal/shared/errors"
	"scalehouse/internal/shared/logger"
	"scalehouse/internal/shared/utils"
)

type CatalogHandler struct {
	truckUC    *usecases.TruckUseCases
	materialUC *usecases.MaterialUseCases
	customerUC *usecases.CustomerUseCases
	logger     logger.Interface
}

func NewCatalogHandler(
	truckUC *usecases.TruckUseCases,
	materialUC *usecases.MaterialUseCases,
	customerUC *usecases.CustomerUseCases,
) *CatalogHandler {
	return &CatalogHandler{
		truckUC:    truckUC,
		materialUC: materialUC,
		customerUC: customerUC,
		logger:     logger.NewLogger(),
	}
}

// CreateTruck handles POST /trucks
func (h *CatalogHandler) CreateTruck(c *gin.Context) {
	var req dto.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.truckUC.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Truck created successfully")
}

// ListTrucks handles GET /trucks
func (h *CatalogHandler) ListTrucks(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	result, err := h.truckUC.List(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ToggleTruck handles PATCH /trucks/:id/toggle
func (h *CatalogHandler) ToggleTruck(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.truckUC.ToggleActive(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Truck updated", result)
}

// CreateMaterial handles POST /materials
func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.materialUC.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Material created successfully")
}

// ListMaterials handles GET /materials
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	result, err := h.materialUC.List(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ToggleMaterial handles PATCH /materials/:id/toggle
func (h *CatalogHandler) ToggleMaterial(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.materialUC.ToggleActive(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Material updated", result)
}

// ListMaterialPrices handles GET /materials/:id/prices
func (h *CatalogHandler) ListMaterialPrices(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.materialUC.ListPrices(c.Request.Context(), id, c.Query("direction"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCustomer handles POST /customers
func (h *CatalogHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customerUC.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Customer created successfully")
}

// ListCustomers handles GET /customers
func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	result, err := h.customerUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id", c.Param("id"))
	}
	return uint(id), nil
}
