package v1

import (
	"sort"

	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/geofence"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/service"
)

func coordinate(lat, lon *float64) models.Coordinate {
	return models.Coordinate{Latitude: *lat, Longitude: *lon}
}

func toCoordinateDTO(c models.Coordinate) CoordinateDTO {
	return CoordinateDTO{Latitude: c.Latitude, Longitude: c.Longitude}
}

func toCoordinateDTOs(coords []models.Coordinate) []CoordinateDTO {
	if len(coords) == 0 {
		return nil
	}
	out := make([]CoordinateDTO, len(coords))
	for i, c := range coords {
		out[i] = toCoordinateDTO(c)
	}
	return out
}

// ModelToLocationStatusResponse преобразует результат проверки координат в DTO
func ModelToLocationStatusResponse(s *geofence.LocationStatus) *LocationStatusResponse {
	return &LocationStatusResponse{
		IsInZone:              s.IsInZone,
		ZoneName:              s.ZoneName,
		HasActiveAlert:        s.HasActiveAlert,
		Message:               s.Message,
		ResponseTimeRemaining: s.ResponseTimeRemaining,
		Timestamp:             s.Timestamp,
	}
}

func toRouteDTO(r *models.RouteSummary) *RouteDTO {
	if r == nil {
		return nil
	}
	return &RouteDTO{
		DistanceKm:      r.DistanceKm,
		DurationSeconds: r.DurationSeconds,
		Polyline:        r.Polyline,
		Points:          toCoordinateDTOs(r.Points),
		Instructions:    r.Instructions,
	}
}

func toShelterResponse(d *service.ShelterDetails) *ShelterResponse {
	if d == nil {
		return nil
	}
	return &ShelterResponse{
		ID:         d.ID,
		Name:       d.Name,
		Address:    d.Address,
		Location:   toCoordinateDTO(d.Location),
		DistanceKm: d.DistanceKm,
		Capacity:   d.Capacity,
		Occupancy:  d.Occupancy,
		Status:     d.Status,
	}
}

// ModelToShelterRouteResponse преобразует ответ сервиса на запрос маршрута
func ModelToShelterRouteResponse(r *service.RouteResponse) *ShelterRouteResponse {
	return &ShelterRouteResponse{
		Success:        r.Success,
		Message:        r.Message,
		HasArrived:     r.HasArrived,
		Shelter:        toShelterResponse(r.Shelter),
		Route:          toRouteDTO(r.Route),
		RequiresAction: r.RequiresAction,
		ActionType:     r.ActionType,
	}
}

func ModelToLocationUpdateResponse(u *service.LocationUpdate) *LocationUpdateResponse {
	return &LocationUpdateResponse{
		HasArrived:             u.HasArrived,
		DistanceRemaining:      u.DistanceRemaining,
		EstimatedTimeRemaining: u.EstimatedTimeRemaining,
		Status:                 string(u.Status),
		RequiresAction:         u.RequiresAction,
		ActionType:             u.ActionType,
		Route:                  toRouteDTO(u.Route),
	}
}

func ModelToEmergencyStatusResponse(s *service.EmergencyStatus) *EmergencyStatusResponse {
	return &EmergencyStatusResponse{
		IsAlertActive: s.IsAlertActive,
		UserStatus:    s.UserStatus,
		ShelterID:     s.ShelterID,
		TimeInShelter: s.TimeInShelter,
	}
}

func ModelToAreaStatusResponse(a *service.AreaStatus) *AreaStatusResponse {
	resp := &AreaStatusResponse{
		TotalShelters:     a.TotalShelters,
		AvailableShelters: a.AvailableShelters,
		FullShelters:      a.FullShelters,
		Shelters:          make([]AreaShelterResponse, len(a.Shelters)),
	}
	for i, s := range a.Shelters {
		resp.Shelters[i] = AreaShelterResponse{
			ID:                  s.ID,
			Name:                s.Name,
			Address:             s.Address,
			Location:            toCoordinateDTO(s.Location),
			Capacity:            s.Capacity,
			Occupancy:           s.Occupancy,
			AvailableSpaces:     s.AvailableSpaces,
			OccupancyPercentage: s.OccupancyPercentage,
			Status:              s.Status,
			DistanceKm:          s.DistanceKm,
		}
	}
	return resp
}

func toPeople(in []PersonRequest) []models.Person {
	people := make([]models.Person, len(in))
	for i, p := range in {
		people[i] = models.Person{ID: p.ID, Age: p.Age, Location: coordinate(p.Latitude, p.Longitude)}
	}
	return people
}

func toFamilies(in []FamilyRequest) []models.Family {
	if len(in) == 0 {
		return nil
	}
	families := make([]models.Family, len(in))
	for i, f := range in {
		families[i] = models.Family{ID: f.ID, MemberIDs: f.MemberIDs}
	}
	return families
}

// toSettings дополняет переданные поля значениями по умолчанию из конфигурации
func toSettings(in *SettingsRequest, defaults allocation.Settings) *allocation.Settings {
	if in == nil {
		return nil
	}
	st := defaults
	if in.AgePriority != nil {
		st.AgePriority = *in.AgePriority
	}
	if in.TravelTimeMinutes > 0 {
		st.TravelTimeMinutes = in.TravelTimeMinutes
	}
	if in.WalkingSpeedKmPerMin > 0 {
		st.WalkingSpeedKmPerMin = in.WalkingSpeedKmPerMin
	}
	return &st
}

// DTOToAllocationRequest преобразует DTO автономного прогона
func DTOToAllocationRequest(in RunAllocationRequest, defaults allocation.Settings) service.AllocationRequest {
	req := service.AllocationRequest{
		People:   toPeople(in.People),
		Families: toFamilies(in.Families),
		Settings: toSettings(in.Settings, defaults),
	}
	for _, s := range in.Shelters {
		req.Shelters = append(req.Shelters, &models.Shelter{
			ID:        s.ID,
			Name:      s.Name,
			Location:  coordinate(s.Latitude, s.Longitude),
			Capacity:  s.Capacity,
			Occupancy: s.Occupancy,
			Active:    true,
		})
	}
	return req
}

func DTOToAlertAllocationRequest(in AlertAllocationRequest, defaults allocation.Settings) service.AllocationRequest {
	return service.AllocationRequest{
		People:   toPeople(in.People),
		Families: toFamilies(in.Families),
		Settings: toSettings(in.Settings, defaults),
	}
}

// ModelToAllocationResponse упорядочивает назначения по идентификатору человека
func ModelToAllocationResponse(o *service.AllocationOutcome) *AllocationResponse {
	resp := &AllocationResponse{
		Assignments: make([]AssignmentResponse, 0, len(o.Result.Assignments)),
		Unassigned:  o.Result.Unassigned,
		Statistics:  o.Statistics,
	}
	if resp.Unassigned == nil {
		resp.Unassigned = []int64{}
	}
	for personID, a := range o.Result.Assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			PersonID:   personID,
			ShelterID:  a.ShelterID,
			DistanceKm: a.DistanceKm,
		})
	}
	sort.Slice(resp.Assignments, func(i, j int) bool {
		return resp.Assignments[i].PersonID < resp.Assignments[j].PersonID
	})
	return resp
}

func ModelToSweepResponse(r *service.SweepResult) *SweepResponse {
	return &SweepResponse{
		AlertID:   r.AlertID,
		Released:  r.Released,
		Completed: r.Completed,
		Purged:    r.Purged,
	}
}

func DTOToShelterModel(in CreateShelterRequest) *models.Shelter {
	return &models.Shelter{
		Name:       in.Name,
		Address:    in.Address,
		ProviderID: in.ProviderID,
		Location:   coordinate(in.Latitude, in.Longitude),
		Capacity:   in.Capacity,
		Occupancy:  in.Occupancy,
		Active:     true,
	}
}

// ModelToShelterResponse преобразует сохраненное убежище в DTO
func ModelToShelterResponse(s *models.Shelter) *ShelterResponse {
	return &ShelterResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Location:  toCoordinateDTO(s.Location),
		Capacity:  s.Capacity,
		Occupancy: s.Occupancy,
	}
}

func DTOToZoneModel(in CreateZoneRequest) *models.AlertZone {
	polygon := make([]models.Coordinate, len(in.Polygon))
	for i, p := range in.Polygon {
		polygon[i] = models.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
	}
	return &models.AlertZone{
		Name:                  in.Name,
		Polygon:               polygon,
		ResponseBudgetSeconds: in.ResponseBudgetSeconds,
	}
}

func ModelToZoneResponse(z *models.AlertZone) *ZoneResponse {
	return &ZoneResponse{
		ID:                    z.ID,
		Name:                  z.Name,
		Polygon:               toCoordinateDTOs(z.Polygon),
		ResponseBudgetSeconds: z.ResponseBudgetSeconds,
		CreatedAt:             z.CreatedAt,
	}
}

func ModelToAlertResponse(a *models.ActiveAlert) *AlertResponse {
	return &AlertResponse{
		ID:        a.ID,
		ZoneID:    a.ZoneID,
		ZoneName:  a.ZoneName,
		StartedAt: a.StartedAt,
		Center:    toCoordinateDTO(a.Center),
		Active:    a.Active,
	}
}
