package dto

type RegisterRequestDTO struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8"`
	Kind        string `json:"user_type" example:"individual"`
	Country     string `json:"country" example:"Belarus"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type AuthResponseDTO struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	Kind        string `json:"user_type,omitempty"`
	Country     string `json:"country,omitempty"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type UserProfileDTO struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	Kind        string `json:"user_type"`
	Country     string `json:"country"`
	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type DriverLoginRequestDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type DriverAuthResponseDTO struct {
	Token    string `json:"token"`
	Login    string `json:"login"`
	Role     string `json:"role"`
	LastName string `json:"last_name"`
	Initials string `json:"initials"`
}
