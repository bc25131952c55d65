package dto

import "time"

// AddProfileRequest targets an existing user; the id field is the user's id
// and becomes the profile's id (shared primary key).
type AddProfileRequest struct {
	ID          string    `json:"id" validate:"required,uuid"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}
