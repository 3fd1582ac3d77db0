package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"inkwell/dto"
	mid "inkwell/internal/middleware"
	"inkwell/model"
	"inkwell/services"
)

type CommentHandler struct {
	Posts    services.PostStore
	Comments services.CommentStore
	Users    services.UserStore
}

// Create godoc
// @Summary      Add a comment
// @Description  Stores the comment and appends its reference to the post's comment list.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string                    true  "Post ID (hex)"
// @Param        data     body      dto.CreateCommentRequest  true  "Comment payload"
// @Success      200  {object}  dto.CommentCreatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{post_id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := mid.UIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "content is required"})
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

	comment := model.Comment{
		Content:   body.Content,
		CreatedAt: time.Now().UTC(),
		UserID:    uid,
		PostID:    post.ID,
	}
	commentID, err := h.Comments.Insert(ctx, &comment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	// append the reference and write the whole list back; concurrent
	// comments on the same post are last-write-wins
	post.Comments = append(post.Comments, commentID)
	if err := h.Posts.ReplaceComments(ctx, post.ID, post.Comments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	author := dto.AuthorInfo{ID: uid.Hex()}
	u, err := h.Users.FindByID(ctx, uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	if u != nil {
		author.Username = u.Username
		author.Avatar = u.Avatar
	}

	return c.JSON(dto.CommentCreatedResponse{
		Msg: "Comment added!",
		Comment: dto.CommentInfo{
			ID:        comment.ID.Hex(),
			Content:   comment.Content,
			CreatedAt: dto.Timestamp(comment.CreatedAt),
			Author:    author,
		},
	})
}
