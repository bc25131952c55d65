package dto

import "time"

type RegisterRequest struct {
	Username string          `json:"username" validate:"required,max=50"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Profile  *ProfileRequest `json:"profile,omitempty" validate:"omitempty"`
}

type RegisterResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Profile  *ProfileRequest `json:"profile,omitempty"`
}

// EditUserRequest carries the id in the body as well as the path, matching
// the PUT contract. Only username and email are editable.
type EditUserRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

type AddRoleRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Name   string `json:"name" validate:"required,max=50"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}
