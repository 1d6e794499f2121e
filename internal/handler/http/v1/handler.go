package v1

//go:generate mockgen -destination=mocks/mock_shelter_service.go -package=mocks github.com/shenikar/shelter_dispatch_system/internal/service ShelterService

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/config"
	"github.com/shenikar/shelter_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	shelterService service.ShelterService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(shelterService service.ShelterService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		shelterService: shelterService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bind разбирает тело запроса и проверяет его; при ошибке ответ уже записан
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return 0, false
	}
	return id, true
}

func (h *Handler) defaultSettings() allocation.Settings {
	st := allocation.DefaultSettings()
	st.AgePriority = h.cfg.AgePriority
	if h.cfg.TravelTimeMinutes > 0 {
		st.TravelTimeMinutes = h.cfg.TravelTimeMinutes
	}
	if h.cfg.WalkingSpeedKmPerMin > 0 {
		st.WalkingSpeedKmPerMin = h.cfg.WalkingSpeedKmPerMin
	}
	return st
}

// @Summary Check location for alert zones
// @Description Check whether a point lies inside an alert zone and whether the zone has an active alert
// @Tags Location
// @Accept json
// @Produce json
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")
	if !h.bind(c, log, &input) {
		return
	}

	status, err := h.shelterService.CheckLocation(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err, "Failed to check location in service")
		return
	}
	c.JSON(http.StatusOK, ModelToLocationStatusResponse(status))
}

// @Summary Request a shelter and a walking route
// @Description Assign the user to a shelter with free space within walking distance and return the route
// @Tags Shelters
// @Accept json
// @Produce json
// @Param request body UserLocationRequest true "User location"
// @Success 200 {object} ShelterRouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /shelters/route [post]
func (h *Handler) requestShelterRoute(c *gin.Context) {
	var input UserLocationRequest
	log := h.logger.WithField("method", "requestShelterRoute")
	if !h.bind(c, log, &input) {
		return
	}
	log = log.WithField("user_id", input.UserID)

	resp, err := h.shelterService.RequestShelterRoute(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err, "Failed to request shelter route in service")
		return
	}
	c.JSON(http.StatusOK, ModelToShelterRouteResponse(resp))
}

// @Summary Report the user's current location
// @Description Advance the user's tracking session and return the remaining distance to the shelter
// @Tags Location
// @Accept json
// @Produce json
// @Param request body UserLocationRequest true "User location"
// @Success 200 {object} LocationUpdateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "No active allocation"
// @Router /location/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UserLocationRequest
	log := h.logger.WithField("method", "updateLocation")
	if !h.bind(c, log, &input) {
		return
	}
	log = log.WithField("user_id", input.UserID)

	update, err := h.shelterService.UpdateUserLocation(c.Request.Context(), input.UserID, *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err, "Failed to update location in service")
		return
	}
	c.JSON(http.StatusOK, ModelToLocationUpdateResponse(update))
}

// @Summary Get the user's emergency status
// @Description Report whether the user's alert is active, the user's tracking status and time spent in the shelter
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} EmergencyStatusResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{id}/emergency-status [get]
func (h *Handler) emergencyStatus(c *gin.Context) {
	userID, ok := parseID(c, "user")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "emergencyStatus").WithField("user_id", userID)

	status, err := h.shelterService.CheckEmergencyStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, log, err, "Failed to check emergency status in service")
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyStatusResponse(status))
}

// AreaQuery - параметры сводки по району
type AreaQuery struct {
	Lat      *float64 `form:"lat" validate:"required,latitude"`
	Lon      *float64 `form:"lon" validate:"required,longitude"`
	RadiusKm float64  `form:"radius_km" validate:"gte=0,lte=50"`
}

// @Summary Get shelters status around a point
// @Description List active shelters within the radius with occupancy classification, nearest first
// @Tags Shelters
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Search radius in kilometers"
// @Success 200 {object} AreaStatusResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Router /shelters/area [get]
func (h *Handler) areaStatus(c *gin.Context) {
	var q AreaQuery
	log := h.logger.WithField("method", "areaStatus")
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(q); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.RadiusKm == 0 {
		q.RadiusKm = h.cfg.SearchRadiusKm
	}

	status, err := h.shelterService.GetAreaSheltersStatus(c.Request.Context(), *q.Lat, *q.Lon, q.RadiusKm)
	if err != nil {
		respondError(c, log, err, "Failed to get area status in service")
		return
	}
	c.JSON(http.StatusOK, ModelToAreaStatusResponse(status))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
