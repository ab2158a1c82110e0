package dto

type RegisterRequestDTO struct {
	Email      string `json:"email" validate:"required,email,max=255" example:"user@zearn.app"`
	Password   string `json:"password" validate:"required,min=6,max=72" example:"secret123"`
	Name       string `json:"name" validate:"required,max=255" example:"Ravi"`
	Mobile     string `json:"mobile" validate:"omitempty,numeric,min=10,max=15" example:"9876543210"`
	Gender     string `json:"gender" validate:"omitempty,oneof=male female other" example:"male"`
	DOB        string `json:"dob" validate:"omitempty,datetime=2006-01-02" example:"2000-01-31"`
	District   string `json:"district" validate:"max=255" example:"Pune"`
	State      string `json:"state" validate:"max=255" example:"Maharashtra"`
	Country    string `json:"country" validate:"max=255" example:"India"`
	ReferredBy string `json:"referred_by" validate:"omitempty,referral_code" example:"Z12344"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@zearn.app"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type AdminLoginRequestDTO struct {
	Password string `json:"password" validate:"required" example:"admin"`
}

type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
