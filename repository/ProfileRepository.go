package repository

import (
	"user-registry/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	GetByID(id uuid.UUID) (*model.Profile, error)
}

type pgProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &pgProfileRepo{db: db}
}

func (r *pgProfileRepo) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *pgProfileRepo) GetByID(id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
