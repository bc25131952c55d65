package repository

import (
	"user-registry/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(role *model.Role) error
}

type pgRoleRepo struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &pgRoleRepo{db: db}
}

func (r *pgRoleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}
