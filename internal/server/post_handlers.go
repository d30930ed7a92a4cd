package server

import (
	"context"
	"time"

	"ripple/internal/models"
	"ripple/internal/service"
	"ripple/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var in service.CreatePostInput
	payload, err := s.parseBody(c, &in)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	post, err := s.postService.CreatePost(ctx, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": models.MsgPostCreated,
		"post":    post,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	var patch service.UpdatePostInput
	payload, err := s.parseBody(c, &patch)
	if err != nil {
		return nil
	}
	if err := validation.ValidateUserID(payload, ""); err != nil {
		return models.RespondWithError(c, err)
	}

	if err := s.postService.UpdatePost(ctx, id, requesterID(payload, 0), patch); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": models.MsgPostUpdated,
	})
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "post ID")
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

	if err := s.postService.DeletePost(ctx, id, requesterID(payload, 0)); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": models.MsgPostDeleted,
	})
}

// LikePost handles PUT /api/posts/:id/like, toggling the caller's like.
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	id, err := s.parseID(c, "id", "post ID")
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

	msg, err := s.postService.ToggleLike(ctx, id, requesterID(payload, 0))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// GetTimeline handles GET /api/posts/timeline/:userId
func (s *Server) GetTimeline(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	posts, user, err := s.timelineService.BuildTimeline(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
		"user":    user.PublicProfile(),
	})
}

// GetProfileFeed handles GET /api/posts/profile/:username
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, models.NewValidationError("Invalid username"))
	}

	posts, user, err := s.timelineService.BuildProfileFeed(ctx, username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
		"user":    user.PublicProfile(),
	})
}
