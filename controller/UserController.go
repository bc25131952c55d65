package controller

import (
	"fmt"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserController provides handlers for user CRUD and search
type UserController struct {
	svc *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{svc: s}
}

// GetUsers godoc
// @Summary      List all users
// @Description  Returns every user with profile and roles populated.
// @Tags         users
// @Produce      json
// @Success      200  {array}   model.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.svc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// FindByRole godoc
// @Summary      Find users by role name
// @Description  Returns all users holding at least one role with the given name (exact match), roles populated.
// @Tags         users
// @Produce      json
// @Param        role query string true "Role name"
// @Success      200  {array}   model.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/FindByRole [get]
func (uc *UserController) FindByRole(c *fiber.Ctx) error {
	users, err := uc.svc.FindByRole(c.Query("role"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// FindByUsername godoc
// @Summary      Find users by username
// @Description  Returns users whose username exactly equals the given string, profile and roles populated.
// @Tags         users
// @Produce      json
// @Param        username query string true "Username"
// @Success      200  {array}   model.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/FindByUsername [get]
func (uc *UserController) FindByUsername(c *fiber.Ctx) error {
	users, err := uc.svc.FindByUsername(c.Query("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// FilterByEmail godoc
// @Summary      Filter users by email domain
// @Description  Returns users whose email ends with the given suffix (literal, case-sensitive match), profile populated.
// @Tags         users
// @Produce      json
// @Param        emailDomain query string true "Email suffix"
// @Success      200  {array}   model.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/FilterByEmail [get]
func (uc *UserController) FilterByEmail(c *fiber.Ctx) error {
	users, err := uc.svc.FilterByEmailDomain(c.Query("emailDomain"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser godoc
// @Summary      Get a user by id
// @Description  Returns the user without forced relationship expansion.
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fmt.Errorf("malformed user id: %w", apperror.ErrInvalidInput))
	}

	user, err := uc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// EditUser godoc
// @Summary      Edit a user
// @Description  Applies a new username and email to the user identified by the body id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        payload body dto.EditUserRequest true "Edit payload"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [put]
func (uc *UserController) EditUser(c *fiber.Ctx) error {
	var req dto.EditUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := uc.svc.Edit(&req); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "User has been successfully edited!"})
}

// AddRoleToUser godoc
// @Summary      Add a role to a user
// @Description  Creates a new role record linked to the user and returns the user with roles populated.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload body dto.AddRoleRequest true "Role payload"
// @Success      200  {object}  model.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/AddRole [post]
func (uc *UserController) AddRoleToUser(c *fiber.Ctx) error {
	var req dto.AddRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	user, err := uc.svc.AddRole(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user, with an embedded profile if one was submitted, in a single transaction.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload body dto.RegisterRequest true "Register payload"
// @Success      201  {object}  dto.RegisterResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users [post]
func (uc *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	res, err := uc.svc.Register(&req)
	if err != nil {
		return respondError(c, err)
	}

	c.Location("/api/users/" + res.ID)
	return c.Status(fiber.StatusCreated).JSON(res)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes the user together with its profile and roles.
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [delete]
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fmt.Errorf("malformed user id: %w", apperror.ErrInvalidInput))
	}

	if err := uc.svc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "User has been successfully deleted!"})
}
