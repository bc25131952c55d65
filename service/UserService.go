package service

import (
	"errors"
	"fmt"
	"strings"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/model"
	"user-registry/repository"
	"user-registry/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(u repository.UserRepository, r repository.RoleRepository) *UserService {
	return &UserService{userRepo: u, roleRepo: r}
}

// ListAll returns every user with profile and roles loaded.
func (s *UserService) ListAll() ([]model.User, error) {
	return s.userRepo.List(repository.ExpandProfile, repository.ExpandRoles)
}

// FindByRole returns users holding at least one role with the given name.
func (s *UserService) FindByRole(role string) ([]model.User, error) {
	if strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("role query parameter is required: %w", apperror.ErrInvalidInput)
	}
	return s.userRepo.FindByRole(role)
}

// FindByUsername returns users whose username equals the given string.
// Usernames are unique so the result holds at most one user, but the
// contract stays a collection.
func (s *UserService) FindByUsername(username string) ([]model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username query parameter is required: %w", apperror.ErrInvalidInput)
	}
	return s.userRepo.FindByUsername(username, repository.ExpandProfile, repository.ExpandRoles)
}

// FilterByEmailDomain returns users whose email ends with the given suffix.
func (s *UserService) FilterByEmailDomain(domain string) ([]model.User, error) {
	if strings.TrimSpace(domain) == "" {
		return nil, fmt.Errorf("email domain query parameter is required: %w", apperror.ErrInvalidInput)
	}
	return s.userRepo.FilterByEmailDomain(domain, repository.ExpandProfile)
}

// GetByID returns the user without forcing relationship expansion.
func (s *UserService) GetByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// Register creates a user, with its embedded profile if one was submitted,
// in a single transaction. Duplicate usernames are rejected before insert;
// the unique index backs that check up.
func (s *UserService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrInvalidInput)
	}

	taken, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("username already exists: %w", apperror.ErrConflict)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Profile != nil {
		user.Profile = &model.Profile{
			FirstName:   req.Profile.FirstName,
			LastName:    req.Profile.LastName,
			DateOfBirth: req.Profile.DateOfBirth,
		}
	}

	if err := s.userRepo.Create(user); err != nil {
		if util.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("username already exists: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	util.Logger.Info().Str("user_id", user.ID.String()).Str("username", user.Username).Msg("user registered")

	return &dto.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Profile:  req.Profile,
	}, nil
}

// Edit applies a new username and email to an existing user. A save failure
// triggers one existence re-check: if the row disappeared the result is
// NotFound, otherwise the failure propagates untouched. No retries.
func (s *UserService) Edit(req *dto.EditUserRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return fmt.Errorf("%v: %w", err, apperror.ErrInvalidInput)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("malformed user id: %w", apperror.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
		}
		return err
	}

	user.Username = req.Username
	user.Email = req.Email

	if err := s.userRepo.Update(user); err != nil {
		exists, existsErr := s.userRepo.Exists(id)
		if existsErr == nil && !exists {
			return fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
		}
		return err
	}
	return nil
}

// AddRole appends a new role record to the user's role collection and
// returns the user with roles loaded.
func (s *UserService) AddRole(req *dto.AddRoleRequest) (*model.User, error) {
	if err := util.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperror.ErrInvalidInput)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("malformed user id: %w", apperror.ErrInvalidInput)
	}

	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}

	role := &model.Role{Name: req.Name, UserID: userID}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(userID, repository.ExpandRoles)
}

// Delete removes the user; its profile and roles go with it.
func (s *UserService) Delete(id uuid.UUID) error {
	exists, err := s.userRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	util.Logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}
