package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(MetricsMiddleware())
	if h.cfg.RateLimitRPS > 0 {
		api.Use(RateLimitMiddleware(h.cfg.RateLimitRPS, h.cfg.RateLimitBurst))
	}

	// Маршруты для пользователей
	api.POST("/location/check", h.checkLocation)
	api.POST("/location/update", h.updateLocation)
	api.POST("/shelters/route", h.requestShelterRoute)
	api.GET("/shelters/area", h.areaStatus)
	api.GET("/users/:id/emergency-status", h.emergencyStatus)

	// Маршруты оператора
	admin := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/shelters", h.createShelter)
		admin.POST("/zones", h.createZone)
		admin.POST("/alerts", h.startAlert)
		admin.POST("/alerts/:id/allocate", h.allocateAlert)
		admin.POST("/alerts/:id/end", h.endAlert)
		admin.POST("/allocations/run", h.runAllocation)
		admin.DELETE("/users/:id/allocation", h.releaseAllocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
