package controller

import (
	"fmt"

	"user-registry/apperror"
	"user-registry/dto"
	"user-registry/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileController struct {
	svc *service.ProfileService
}

func NewProfileController(s *service.ProfileService) *ProfileController {
	return &ProfileController{svc: s}
}

// ViewProfile godoc
// @Summary      Get a profile by id
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Profile id (equals the owning user's id)"
// @Success      200  {object}  model.Profile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /profiles/{id} [get]
func (pc *ProfileController) ViewProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fmt.Errorf("malformed profile id: %w", apperror.ErrInvalidInput))
	}

	profile, err := pc.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddProfile godoc
// @Summary      Add a profile to an existing user
// @Description  Creates a profile whose id is the target user's id.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        payload body dto.AddProfileRequest true "Profile payload"
// @Success      200  "profile created"
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /profiles [post]
func (pc *ProfileController) AddProfile(c *fiber.Ctx) error {
	var req dto.AddProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}

	if err := pc.svc.AddProfile(&req); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
