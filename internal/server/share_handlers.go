package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SharePost handles POST /share-post/:postId
// @Summary Share a post
// @Description A user can share a given post at most once
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body object{content=string} false "Optional share text"
// @Success 201 {object} models.Share
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /share-post/{postId} [post]
func (s *Server) SharePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	// Share text is optional; an empty body is fine.
	_ = c.BodyParser(&req)

	share, err := s.shareService.SharePost(c.Context(), service.SharePostInput{
		UserID:  c.Locals("userID").(uint),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(share)
}

// DeleteShare handles DELETE /delete-share/:shareId
// @Summary Delete a share
// @Description The share must still link the claimed user and post, else 409
// @Tags shares
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shareId path int true "Share ID"
// @Param request body object{postId=integer} true "Post the share belongs to"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /delete-share/{shareId} [delete]
func (s *Server) DeleteShare(c *fiber.Ctx) error {
	shareID, err := s.parseID(c, "shareId")
	if err != nil {
		return nil
	}

	var req struct {
		PostID uint `json:"postId"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId is required"))
	}

	if err := s.shareService.DeleteShare(c.Context(), service.DeleteShareInput{
		UserID:  c.Locals("userID").(uint),
		ShareID: shareID,
		PostID:  req.PostID,
	}); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Share deleted"})
}

// CheckShares handles GET /check-share/:userId
// @Summary List a user's shares
// @Description Returns the shares and the post IDs they cover
// @Tags shares
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{shares=[]models.Share,postIds=[]integer}
// @Router /check-share/{userId} [get]
func (s *Server) CheckShares(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	shares, postIDs, err := s.shareService.CheckShares(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"shares":  shares,
		"postIds": postIDs,
	})
}
