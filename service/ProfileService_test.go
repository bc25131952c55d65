package service

import (
	"errors"
	"testing"
	"time"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/repository"

	"github.com/google/uuid"
)

func TestAddProfileUsesUserID(t *testing.T) {
	db := setupTestDB(t)
	userSvc := newUserService(db)
	profileSvc := NewProfileService(repository.NewProfileRepository(db), repository.NewUserRepository(db))

	res, err := userSvc.Register(&dto.RegisterRequest{Username: "tonsan1", Email: "test@abv.bg"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = profileSvc.AddProfile(&dto.AddProfileRequest{
		ID:          res.ID,
		FirstName:   "Tony",
		LastName:    "K",
		DateOfBirth: time.Date(1995, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("add profile: %v", err)
	}

	id, _ := uuid.Parse(res.ID)
	profile, err := profileSvc.GetByID(id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.ID != id {
		t.Fatalf("profile id %s does not match user id %s", profile.ID, id)
	}
	if profile.FirstName != "Tony" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAddProfileToMissingUser(t *testing.T) {
	db := setupTestDB(t)
	profileSvc := NewProfileService(repository.NewProfileRepository(db), repository.NewUserRepository(db))

	err := profileSvc.AddProfile(&dto.AddProfileRequest{ID: uuid.NewString(), FirstName: "Tony"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddProfileTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	userSvc := newUserService(db)
	profileSvc := NewProfileService(repository.NewProfileRepository(db), repository.NewUserRepository(db))

	res, err := userSvc.Register(&dto.RegisterRequest{Username: "tonsan1", Email: "test@abv.bg"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	req := &dto.AddProfileRequest{ID: res.ID, FirstName: "Tony"}
	if err := profileSvc.AddProfile(req); err != nil {
		t.Fatalf("add profile: %v", err)
	}
	if err := profileSvc.AddProfile(req); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetMissingProfile(t *testing.T) {
	db := setupTestDB(t)
	profileSvc := NewProfileService(repository.NewProfileRepository(db), repository.NewUserRepository(db))

	if _, err := profileSvc.GetByID(uuid.New()); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
