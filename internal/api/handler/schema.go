package handler

import (
	"time"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateContactStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer. These are
// intentionally separate from domain types so the JSON contract is not
// coupled to internal changes.

// userResponse is the safe account projection. The password hash never
// appears here, regardless of what the domain struct carries.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CPF       string    `json:"cpf,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Phone:     u.Phone,
		CPF:       u.CPF,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type listUsersResponse struct {
	Total int64          `json:"total"`
	Users []userResponse `json:"users"`
}

type listPropertiesResponse struct {
	Total      int64             `json:"total"`
	Properties []domain.Property `json:"properties"`
}

type listContactsResponse struct {
	Total    int64            `json:"total"`
	Contacts []domain.Contact `json:"contacts"`
}

type listBrokersResponse struct {
	Total   int64           `json:"total"`
	Brokers []domain.Broker `json:"brokers"`
}

type listImportLogsResponse struct {
	Logs []domain.ImportLog `json:"logs"`
}

type toggleActiveResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

type toggleFeaturedResponse struct {
	Message    string `json:"message"`
	IsFeatured bool   `json:"is_featured"`
}

type statusUpdateResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}
