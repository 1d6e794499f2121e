package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Run a standalone allocation
// @Description Allocate people to the given shelters, or to the active shelters when none are given. Occupancy is not persisted.
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body RunAllocationRequest true "Allocation input"
// @Success 200 {object} AllocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security ApiKeyAuth
// @Router /allocations/run [post]
func (h *Handler) runAllocation(c *gin.Context) {
	var input RunAllocationRequest
	log := h.logger.WithField("method", "runAllocation")
	if !h.bind(c, log, &input) {
		return
	}

	outcome, err := h.shelterService.RunAllocation(c.Request.Context(), DTOToAllocationRequest(input, h.defaultSettings()))
	if err != nil {
		respondError(c, log, err, "Failed to run allocation in service")
		return
	}
	c.JSON(http.StatusOK, ModelToAllocationResponse(outcome))
}

// @Summary Allocate people for an active alert
// @Description Allocate people to shelters around the alert center, reserve seats and persist the assignments
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param request body AlertAllocationRequest true "People to allocate"
// @Success 200 {object} AllocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert is not active or seats changed"
// @Security ApiKeyAuth
// @Router /alerts/{id}/allocate [post]
func (h *Handler) allocateAlert(c *gin.Context) {
	alertID, ok := parseID(c, "alert")
	if !ok {
		return
	}
	var input AlertAllocationRequest
	log := h.logger.WithField("method", "allocateAlert").WithField("alert_id", alertID)
	if !h.bind(c, log, &input) {
		return
	}

	outcome, err := h.shelterService.AllocateAlert(c.Request.Context(), alertID, DTOToAlertAllocationRequest(input, h.defaultSettings()))
	if err != nil {
		respondError(c, log, err, "Failed to allocate alert in service")
		return
	}
	c.JSON(http.StatusOK, ModelToAllocationResponse(outcome))
}

// @Summary End an alert
// @Description Deactivate the alert, release reserved seats, complete allocations and close tracking sessions
// @Tags Alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} SweepResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Security ApiKeyAuth
// @Router /alerts/{id}/end [post]
func (h *Handler) endAlert(c *gin.Context) {
	alertID, ok := parseID(c, "alert")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "endAlert").WithField("alert_id", alertID)

	res, err := h.shelterService.EndAlert(c.Request.Context(), alertID)
	if err != nil {
		respondError(c, log, err, "Failed to end alert in service")
		return
	}
	c.JSON(http.StatusOK, ModelToSweepResponse(res))
}

// @Summary Release the user's allocation
// @Description Free the user's reserved seat and close the tracking session
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active allocation"
// @Security ApiKeyAuth
// @Router /users/{id}/allocation [delete]
func (h *Handler) releaseAllocation(c *gin.Context) {
	userID, ok := parseID(c, "user")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "releaseAllocation").WithField("user_id", userID)

	if err := h.shelterService.ReleaseAllocation(c.Request.Context(), userID); err != nil {
		respondError(c, log, err, "Failed to release allocation in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Register a shelter
// @Tags Shelters
// @Accept json
// @Produce json
// @Param shelter body CreateShelterRequest true "Shelter"
// @Success 201 {object} ShelterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate shelter"
// @Security ApiKeyAuth
// @Router /shelters [post]
func (h *Handler) createShelter(c *gin.Context) {
	var input CreateShelterRequest
	log := h.logger.WithField("method", "createShelter")
	if !h.bind(c, log, &input) {
		return
	}

	shelter := DTOToShelterModel(input)
	if err := h.shelterService.CreateShelter(c.Request.Context(), shelter); err != nil {
		respondError(c, log, err, "Failed to create shelter in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToShelterResponse(shelter))
}

// @Summary Register an alert zone
// @Tags Zones
// @Accept json
// @Produce json
// @Param zone body CreateZoneRequest true "Alert zone"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Zone name already taken"
// @Security ApiKeyAuth
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")
	if !h.bind(c, log, &input) {
		return
	}

	zone := DTOToZoneModel(input)
	if err := h.shelterService.CreateZone(c.Request.Context(), zone); err != nil {
		respondError(c, log, err, "Failed to create zone in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(zone))
}

// @Summary Start an alert for a zone
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body StartAlertRequest true "Zone to alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 409 {object} map[string]string "Zone already has an active alert"
// @Security ApiKeyAuth
// @Router /alerts [post]
func (h *Handler) startAlert(c *gin.Context) {
	var input StartAlertRequest
	log := h.logger.WithField("method", "startAlert")
	if !h.bind(c, log, &input) {
		return
	}
	log = log.WithField("zone_id", input.ZoneID)

	alert, err := h.shelterService.StartAlert(c.Request.Context(), input.ZoneID)
	if err != nil {
		respondError(c, log, err, "Failed to start alert in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}
