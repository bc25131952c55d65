package service

import (
	"errors"
	"testing"
	"time"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/model"
	"user-registry/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Role{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewRoleRepository(db))
}

func registerFixture(t *testing.T, svc *UserService, username, email string) *dto.RegisterResponse {
	t.Helper()
	res, err := svc.Register(&dto.RegisterRequest{
		Username: username,
		Email:    email,
		Profile: &dto.ProfileRequest{
			FirstName:   "Tony",
			LastName:    "K",
			DateOfBirth: time.Date(1995, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return res
}

func TestRegisterThenGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	res := registerFixture(t, svc, "tonsan1", "test@abv.bg")
	id, err := uuid.Parse(res.ID)
	if err != nil {
		t.Fatalf("response id is not a uuid: %v", err)
	}

	user, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if user.Username != "tonsan1" || user.Email != "test@abv.bg" {
		t.Fatalf("roundtrip mismatch: %s / %s", user.Username, user.Email)
	}
}

func TestRegisterAcceptsSingleCharacterUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	res, err := svc.Register(&dto.RegisterRequest{Username: "a", Email: "a@abv.bg"})
	if err != nil {
		t.Fatalf("register single-character username: %v", err)
	}

	id, _ := uuid.Parse(res.ID)
	user, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Username != "a" {
		t.Fatalf("unexpected username %q", user.Username)
	}

	if err := svc.Edit(&dto.EditUserRequest{ID: res.ID, Username: "b", Email: "b@abv.bg"}); err != nil {
		t.Fatalf("edit to single-character username: %v", err)
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	cases := []dto.RegisterRequest{
		{Username: "", Email: "test@abv.bg"},
		{Username: "tonsan1", Email: ""},
		{Username: "tonsan1", Email: "not-an-email"},
	}
	for _, req := range cases {
		if _, err := svc.Register(&req); !errors.Is(err, apperror.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", req, err)
		}
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows created, got %d", count)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	registerFixture(t, svc, "tonsan1", "test@abv.bg")

	_, err := svc.Register(&dto.RegisterRequest{Username: "tonsan1", Email: "other@abv.bg"})
	if !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("username = ?", "tonsan1").Count(&count)
	if count != 1 {
		t.Fatalf("expected a single row, got %d", count)
	}
}

func TestRegisterWithoutProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	res, err := svc.Register(&dto.RegisterRequest{Username: "bare", Email: "bare@abv.bg"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var profileCount int64
	db.Model(&model.Profile{}).Count(&profileCount)
	if profileCount != 0 {
		t.Fatalf("expected no profile row, got %d", profileCount)
	}
	if res.Profile != nil {
		t.Fatalf("expected no profile echoed")
	}
}

func TestSearchesRejectBlankInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	if _, err := svc.FindByRole("  "); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("find by role: expected invalid input, got %v", err)
	}
	if _, err := svc.FindByUsername(""); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("find by username: expected invalid input, got %v", err)
	}
	if _, err := svc.FilterByEmailDomain(""); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("filter by email: expected invalid input, got %v", err)
	}
}

func TestFindByUsernameReturnsMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	registerFixture(t, svc, "tonsan1", "test@abv.bg")
	registerFixture(t, svc, "tonsan2", "test2@abv.bg")

	users, err := svc.FindByUsername("tonsan2")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Username != "tonsan2" {
		t.Fatalf("unexpected user %s", users[0].Username)
	}
	if users[0].Profile == nil {
		t.Fatalf("expected profile loaded")
	}

	none, err := svc.FindByUsername("tonsan9")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestEditUpdatesUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	res := registerFixture(t, svc, "tonsan1", "test@abv.bg")

	err := svc.Edit(&dto.EditUserRequest{ID: res.ID, Username: "renamed", Email: "renamed@abv.bg"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	id, _ := uuid.Parse(res.ID)
	user, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Username != "renamed" || user.Email != "renamed@abv.bg" {
		t.Fatalf("edit not applied: %s / %s", user.Username, user.Email)
	}
}

func TestEditNonexistentReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	registerFixture(t, svc, "tonsan1", "test@abv.bg")

	err := svc.Edit(&dto.EditUserRequest{ID: uuid.NewString(), Username: "ghost", Email: "ghost@abv.bg"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// store unchanged
	var user model.User
	if err := db.First(&user, "username = ?", "tonsan1").Error; err != nil {
		t.Fatalf("fixture row gone: %v", err)
	}
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected store unchanged, got %d rows", count)
	}
}

func TestAddRoleAppendsExactlyOne(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	res := registerFixture(t, svc, "tonsan1", "test@abv.bg")

	first, err := svc.AddRole(&dto.AddRoleRequest{UserID: res.ID, Name: "admin"})
	if err != nil {
		t.Fatalf("add role: %v", err)
	}
	if len(first.Roles) != 1 || first.Roles[0].Name != "admin" {
		t.Fatalf("expected single admin role, got %+v", first.Roles)
	}

	second, err := svc.AddRole(&dto.AddRoleRequest{UserID: res.ID, Name: "editor"})
	if err != nil {
		t.Fatalf("add role: %v", err)
	}
	if len(second.Roles) != 2 {
		t.Fatalf("expected prior role intact, got %d roles", len(second.Roles))
	}
}

func TestAddRoleToMissingUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.AddRole(&dto.AddRoleRequest{UserID: uuid.NewString(), Name: "admin"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRemovesUserAndDependents(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	res := registerFixture(t, svc, "tonsan1", "test@abv.bg")
	id, _ := uuid.Parse(res.ID)

	if _, err := svc.AddRole(&dto.AddRoleRequest{UserID: res.ID, Name: "admin"}); err != nil {
		t.Fatalf("add role: %v", err)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(id); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	var profileCount, roleCount int64
	db.Model(&model.Profile{}).Count(&profileCount)
	db.Model(&model.Role{}).Count(&roleCount)
	if profileCount != 0 || roleCount != 0 {
		t.Fatalf("expected cascade, got %d profiles and %d roles", profileCount, roleCount)
	}

	if err := svc.Delete(id); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
