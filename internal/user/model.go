package user

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest payload of registration.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name  string `json:"name"  example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
}

// UpdateRequest payload of partial update. Omitted fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
