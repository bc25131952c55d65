package service

import (
	"errors"
	"fmt"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/model"
	"user-registry/repository"
	"user-registry/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(p repository.ProfileRepository, u repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: p, userRepo: u}
}

func (s *ProfileService) GetByID(id uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return profile, nil
}

// AddProfile creates a profile for an existing user. The profile takes the
// target user's id as its own, keeping the shared-primary-key invariant.
func (s *ProfileService) AddProfile(req *dto.AddProfileRequest) error {
	if err := util.ValidateStruct(req); err != nil {
		return fmt.Errorf("%v: %w", err, apperror.ErrInvalidInput)
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("malformed user id: %w", apperror.ErrInvalidInput)
	}

	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperror.ErrNotFound)
	}

	profile := &model.Profile{
		ID:          userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		if util.IsDuplicateKeyError(err) {
			return fmt.Errorf("user already has a profile: %w", apperror.ErrConflict)
		}
		return err
	}
	return nil
}
