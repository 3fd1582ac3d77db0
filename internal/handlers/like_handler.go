package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"inkwell/dto"
	mid "inkwell/internal/middleware"
	"inkwell/services"
)

type LikeHandler struct {
	Posts services.PostStore
}

// Toggle godoc
// @Summary      Toggle a like
// @Description  Adds the caller to the post's likers set, or removes them if already present.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.LikeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/like [post]
func (h *LikeHandler) Toggle(c *fiber.Ctx) error {
	uid, ok := mid.UIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	post, err := h.Posts.FindByID(ctx, postID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Post not found"})
	}

	likes, action := services.ToggleLike(post.Likes, uid)
	if err := h.Posts.ReplaceLikes(ctx, post.ID, likes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.JSON(dto.LikeResponse{
		Msg:        "Post " + action + "!",
		Action:     action,
		LikesCount: len(likes),
	})
}
