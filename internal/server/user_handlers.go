package server

import (
	"context"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/service"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	var profile models.Profile
	err = cache.Aside(c.Context(), cache.UserKey(id), &profile, cache.UserTTL, func() error {
		user, err := s.userService.GetUser(c.Context(), id)
		if err != nil {
			return err
		}
		profile = user.PublicProfile()
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    profile,
	})
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	var patch service.UpdateUserInput
	payload, err := s.parseBody(c, &patch)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	requester := requesterID(payload, 0)
	isAdmin := s.isAdminUser(ctx, requester)

	if err := s.userService.UpdateUser(ctx, id, requester, isAdmin, patch); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": models.MsgUserUpdated,
	})
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	payload, err := s.parseBody(c, nil)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	requester := requesterID(payload, 0)
	isAdmin := s.isAdminUser(ctx, requester)

	if err := s.userService.DeleteUser(ctx, id, requester, isAdmin); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": models.MsgUserDeleted,
	})
}

// FollowUser handles PUT /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	payload, err := s.parseBody(c, nil)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	msg, err := s.userService.Follow(ctx, id, requesterID(payload, 0))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// UnfollowUser handles PUT /api/users/:id/unfollow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	payload, err := s.parseBody(c, nil)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	msg, err := s.userService.Unfollow(ctx, id, requesterID(payload, 0))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// isAdminUser reports whether the user has admin privileges. Unknown users
// are not admins.
func (s *Server) isAdminUser(ctx context.Context, userID uint) bool {
	if userID == 0 {
		return false
	}
	user, err := s.userService.GetUser(ctx, userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}
