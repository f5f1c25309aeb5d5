package dto

type RoadDTO struct {
	ID             int     `json:"road_id,omitempty"`
	Name           string  `json:"name"`
	Type           string  `json:"road_type" example:"toll"`
	StartLatitude  float64 `json:"start_latitude"`
	StartLongitude float64 `json:"start_longitude"`
	EndLatitude    float64 `json:"end_latitude"`
	EndLongitude   float64 `json:"end_longitude"`
	Description    string  `json:"description,omitempty"`
}

type VignettePointDTO struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
}

type AdminCreateUserRequestDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role" example:"admin"`
}

type AdminUserDTO struct {
	ID       int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     string `json:"user_type,omitempty"`
	Country  string `json:"country,omitempty"`
}
