package supplier

import "github.com/JorgeWendell/fleetmanager-sub000/internal/domain"

type CreateRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type ListResponse struct {
	Suppliers []domain.Supplier `json:"suppliers"`
	Total     int64             `json:"total"`
}
