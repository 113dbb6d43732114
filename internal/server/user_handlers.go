package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /in/:userId
// @Summary Get a user profile
// @Description Profile with posts, liked posts, followers and following
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} service.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /in/{userId} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), userID, s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// CheckFollow handles GET /check-follow/:userId
// @Summary List followed user IDs
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{following=[]integer}
// @Router /check-follow/{userId} [get]
func (s *Server) CheckFollow(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	ids, err := s.userService.FollowingIDs(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": ids})
}

// GetFollowStatus handles GET /in/:userId/follow
// @Summary Check whether the user follows another user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Follower ID (must match the token)"
// @Param request body object{followUserId=integer} true "User to check"
// @Success 200 {object} object{following=bool}
// @Failure 403 {object} models.ErrorResponse
// @Router /in/{userId}/follow [get]
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.requireOwner(c, userID); err != nil {
		return nil
	}

	var req struct {
		FollowUserID uint `json:"followUserId"`
	}
	if err := c.BodyParser(&req); err != nil || req.FollowUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("followUserId is required"))
	}

	following, err := s.userService.IsFollowing(c.Context(), userID, req.FollowUserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// ToggleFollow handles PUT /in/:userId/follow. Repeating the request flips
// the edge back, so follow and unfollow alternate.
// @Summary Toggle following another user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Follower ID (must match the token)"
// @Param request body object{followUserId=integer} true "User to toggle"
// @Success 200 {object} object{following=bool}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /in/{userId}/follow [put]
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.requireOwner(c, userID); err != nil {
		return nil
	}

	var req struct {
		FollowUserID uint `json:"followUserId"`
	}
	if err := c.BodyParser(&req); err != nil || req.FollowUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("followUserId is required"))
	}

	following, err := s.userService.ToggleFollow(c.Context(), userID, req.FollowUserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// UpdateProfile handles PUT /profile-edit/:userId
// @Summary Edit profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID (must match the token)"
// @Param request body object{username=string,name=string,about=string,location=string,education=string,occupation=string,imageUrl=string} true "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /profile-edit/{userId} [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.requireOwner(c, userID); err != nil {
		return nil
	}

	var req struct {
		Username   string `json:"username"`
		Name       string `json:"name"`
		About      string `json:"about"`
		Location   string `json:"location"`
		Education  string `json:"education"`
		Occupation string `json:"occupation"`
		ImageURL   string `json:"imageUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:     userID,
		Username:   req.Username,
		Name:       req.Name,
		About:      req.About,
		Location:   req.Location,
		Education:  req.Education,
		Occupation: req.Occupation,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// EditPassword handles PUT /edit-password/:userId
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID (must match the token)"
// @Param request body object{oldPassword=string,newPassword=string} true "Passwords"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /edit-password/{userId} [put]
func (s *Server) EditPassword(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.requireOwner(c, userID); err != nil {
		return nil
	}

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.userService.ChangePassword(c.Context(), service.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

// DeleteProfile handles DELETE /profile-delete/:userId
// @Summary Delete account
// @Description Removes the user, their posts and everything hanging off them
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID (must match the token)"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Router /profile-delete/{userId} [delete]
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.requireOwner(c, userID); err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
