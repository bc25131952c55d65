package repository

import (
	"strings"

	"user-registry/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uuid.UUID, expand ...Expand) (*model.User, error)
	List(expand ...Expand) ([]model.User, error)
	FindByRole(name string) ([]model.User, error)
	FindByUsername(username string, expand ...Expand) ([]model.User, error)
	FilterByEmailDomain(suffix string, expand ...Expand) ([]model.User, error)
	UsernameExists(username string) (bool, error)
	Exists(id uuid.UUID) (bool, error)
	Update(user *model.User) error
	Delete(id uuid.UUID) error
}

type pgUserRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) withExpand(expand []Expand) *gorm.DB {
	q := r.db
	for _, e := range expand {
		q = q.Preload(string(e))
	}
	return q
}

// Create persists the user together with any embedded profile in one transaction.
func (r *pgUserRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *pgUserRepo) GetByID(id uuid.UUID, expand ...Expand) (*model.User, error) {
	var u model.User
	if err := r.withExpand(expand).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *pgUserRepo) List(expand ...Expand) ([]model.User, error) {
	// initialized so an empty result serializes as [] rather than null
	users := []model.User{}
	if err := r.withExpand(expand).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByRole returns users holding at least one role with the given name,
// roles loaded.
func (r *pgUserRepo) FindByRole(name string) ([]model.User, error) {
	users := []model.User{}
	sub := r.db.Model(&model.Role{}).Select("user_id").Where("name = ?", name)
	if err := r.db.Preload(string(ExpandRoles)).Where("id IN (?)", sub).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *pgUserRepo) FindByUsername(username string, expand ...Expand) ([]model.User, error) {
	users := []model.User{}
	if err := r.withExpand(expand).Where("username = ?", username).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FilterByEmailDomain does a literal suffix match on the email column.
func (r *pgUserRepo) FilterByEmailDomain(suffix string, expand ...Expand) ([]model.User, error) {
	users := []model.User{}
	pattern := "%" + escapeLike(suffix)
	if err := r.withExpand(expand).Where("email LIKE ? ESCAPE '\\'", pattern).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *pgUserRepo) UsernameExists(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pgUserRepo) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pgUserRepo) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user and its profile and roles in one go.
func (r *pgUserRepo) Delete(id uuid.UUID) error {
	return r.db.Select(clause.Associations).Delete(&model.User{ID: id}).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
