package models

// Person - участник одного прогона распределения
type Person struct {
	ID       int64      `json:"id"`
	Age      int        `json:"age"`
	Location Coordinate `json:"location"`
}

// Family - семья, которую нельзя разделять между убежищами
type Family struct {
	ID        int64   `json:"id"`
	MemberIDs []int64 `json:"member_ids"`
}

// User - зарегистрированный пользователь приложения
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	FamilyID *int64 `json:"family_id,omitempty"`
}
