package dto

import "github.com/recruitsss/recruitsss-backend/internal/models"

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`

	// Optional candidate profile fields
	Bio             string   `json:"bio,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Location        string   `json:"location,omitempty"`

	// Optional recruiter profile fields
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	Industry           string `json:"industry,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthResponse struct {
	User    *models.User `json:"user"`
	Tokens  TokenPair    `json:"tokens"`
	Message string       `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
