package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "scalehouse/internal/interfaces/http/handlers/catalog"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
}

func SetupCatalogRoutes(group *gin.RouterGroup, config *CatalogRouteConfig) {
	trucks := group.Group("/trucks")
	{
		trucks.POST("", config.CatalogHandler.CreateTruck)
		trucks.GET("", config.CatalogHandler.ListTrucks)
		trucks.PATCH("/:id/toggle", config.CatalogHandler.ToggleTruck)
	}

	materials := group.Group("/materials")
	{
		materials.POST("", config.CatalogHandler.CreateMaterial)
		materials.GET("", config.CatalogHandler.ListMaterials)
		materials.GET("/:id/prices", config.CatalogHandler.ListMaterialPrices)
		materials.PATCH("/:id/toggle", config.CatalogHandler.ToggleMaterial)
	}

	customers := group.Group("/customers")
	{
		customers.POST("", config.CatalogHandler.CreateCustomer)
		customers.GET("", config.CatalogHandler.ListCustomers)
	}
}
