package server

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/service"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var in service.RegisterInput
	payload, err := s.parseBody(c, &in)
	if err != nil {
		return nil
	}
	if err := validation.ValidateRegister(payload); err != nil {
		return models.RespondWithError(c, err)
	}

	user, err := s.userService.Register(ctx, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": models.MsgUserCreated,
		"user":    user.PublicProfile(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var in loginRequest
	payload, err := s.parseBody(c, &in)
	if err != nil {
		return nil
	}
	if err := validation.ValidateLogin(payload); err != nil {
		return models.RespondWithError(c, err)
	}

	user, err := s.userService.Authenticate(ctx, in.Username, in.Email, in.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}
