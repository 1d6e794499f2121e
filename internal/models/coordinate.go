package models

// Coordinate - географическая точка в WGS84
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsZero сообщает, что координата не задана
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}
