package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile uses a shared primary key: its ID is both the primary key and
// the foreign key to the owning User, so no id is generated here.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string    `gorm:"size:100" json:"firstName"`
	LastName    string    `gorm:"size:100" json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}
