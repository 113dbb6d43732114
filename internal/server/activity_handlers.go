package server

import (
	"context"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// activity is the shared shape of the four activity handlers: resolve the
// user and optional qty, then delegate to one aggregator.
func (s *Server) activity(c *fiber.Ctx, fetch func(ctx context.Context, userID uint, qty int) ([]*models.Post, error)) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	qty, err := s.parseQty(c)
	if err != nil {
		return nil
	}

	posts, err := fetch(c.Context(), userID, qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// PostActivity handles GET /in/:userId/postActivity[/:qty]
// @Summary Posts authored by a user
// @Tags activity
// @Produce json
// @Param userId path int true "User ID"
// @Param qty path int false "Max results"
// @Success 200 {array} models.Post
// @Router /in/{userId}/postActivity/{qty} [get]
func (s *Server) PostActivity(c *fiber.Ctx) error {
	return s.activity(c, s.activityService.PostActivity)
}

// LikeActivity handles GET /in/:userId/likeActivity[/:qty]
// @Summary Posts liked by a user
// @Tags activity
// @Produce json
// @Param userId path int true "User ID"
// @Param qty path int false "Max results"
// @Success 200 {array} models.Post
// @Router /in/{userId}/likeActivity/{qty} [get]
func (s *Server) LikeActivity(c *fiber.Ctx) error {
	return s.activity(c, s.activityService.LikeActivity)
}

// CommentActivity handles GET /in/:userId/commentActivity[/:qty]
// @Summary Posts a user commented on
// @Description Each parent post appears once, newest comment first
// @Tags activity
// @Produce json
// @Param userId path int true "User ID"
// @Param qty path int false "Max results"
// @Success 200 {array} models.Post
// @Router /in/{userId}/commentActivity/{qty} [get]
func (s *Server) CommentActivity(c *fiber.Ctx) error {
	return s.activity(c, s.activityService.CommentActivity)
}

// ShareActivity handles GET /in/:userId/shareActivity[/:qty]
// @Summary Posts a user shared
// @Description Each parent post appears once, newest share first
// @Tags activity
// @Produce json
// @Param userId path int true "User ID"
// @Param qty path int false "Max results"
// @Success 200 {array} models.Post
// @Router /in/{userId}/shareActivity/{qty} [get]
func (s *Server) ShareActivity(c *fiber.Ctx) error {
	return s.activity(c, s.activityService.ShareActivity)
}
