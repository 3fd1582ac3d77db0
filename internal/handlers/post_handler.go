package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inkwell/dto"
	mid "inkwell/internal/middleware"
	"inkwell/model"
	"inkwell/services"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type PostHandler struct {
	Posts    services.PostStore
	Users    services.UserStore
	Comments services.CommentStore
}

func authorInfo(users map[bson.ObjectID]model.User, id bson.ObjectID) dto.AuthorInfo {
	a := dto.AuthorInfo{ID: id.Hex()}
	if u, ok := users[id]; ok {
		a.Username = u.Username
		a.Avatar = u.Avatar
	}
	return a
}

func parsePostID(c *fiber.Ctx) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params("post_id"))
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}
	return id, nil
}

// List godoc
// @Summary      List posts
// @Description  One page of posts, newest first, optionally filtered by tag. Total is the full filtered count.
// @Tags         posts
// @Produce      json
// @Param        page      query  int     false  "Page (default 1)"
// @Param        per_page  query  int     false  "Page size (default 10, max 100)"
// @Param        tag       query  string  false  "Only posts carrying this tag"
// @Success      200  {object}  dto.PostListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	tag := c.Query("tag")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	posts, err := h.Posts.List(ctx, tag, int64(page-1)*int64(perPage), int64(perPage))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}
	total, err := h.Posts.Count(ctx, tag)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	authorIDs := make([]bson.ObjectID, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.UserID)
	}
	authors, err := h.Users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	items := make([]dto.PostSummary, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.PostSummary{
			ID:            p.ID.Hex(),
			Title:         p.Title,
			Summary:       p.Summary,
			Content:       p.Content,
			Tags:          p.Tags,
			CreatedAt:     dto.Timestamp(p.CreatedAt),
			UpdatedAt:     dto.Timestamp(p.UpdatedAt),
			Author:        authorInfo(authors, p.UserID),
			LikesCount:    len(p.Likes),
			CommentsCount: len(p.Comments),
		})
	}

	return c.JSON(dto.PostListResponse{
		Posts:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostRequest  true  "Post payload"
// @Success      200   {object}  dto.CreatePostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := mid.UIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}

	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
	}
	if body.Title == "" || body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "title and content are required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	post := model.Post{
		Title:     body.Title,
		Content:   body.Content,
		Summary:   body.Summary,
		Tags:      services.NormalizeTags(body.Tags),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    uid,
		Likes:     []bson.ObjectID{},
		Comments:  []bson.ObjectID{},
	}

	id, err := h.Posts.Insert(ctx, &post)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.JSON(dto.CreatePostResponse{Msg: "Post created!", ID: id.Hex()})
}

// Get godoc
// @Summary      Get a post detail
// @Description  Full detail including the complete comment list, each comment expanded with its author.
// @Tags         posts
// @Produce      json
// @Param        post_id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.PostDetail
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
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

	comments, err := h.Comments.FindByIDs(ctx, post.Comments)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	userIDs := []bson.ObjectID{post.UserID}
	for _, cm := range comments {
		userIDs = append(userIDs, cm.UserID)
	}
	users, err := h.Users.FindByIDs(ctx, userIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	// walk the post's reference list so comments keep insertion order
	infos := make([]dto.CommentInfo, 0, len(post.Comments))
	for _, cid := range post.Comments {
		cm, ok := comments[cid]
		if !ok {
			continue
		}
		infos = append(infos, dto.CommentInfo{
			ID:        cm.ID.Hex(),
			Content:   cm.Content,
			CreatedAt: dto.Timestamp(cm.CreatedAt),
			Author:    authorInfo(users, cm.UserID),
		})
	}

	return c.JSON(dto.PostDetail{
		ID:         post.ID.Hex(),
		Title:      post.Title,
		Content:    post.Content,
		Summary:    post.Summary,
		Tags:       post.Tags,
		CreatedAt:  dto.Timestamp(post.CreatedAt),
		UpdatedAt:  dto.Timestamp(post.UpdatedAt),
		Author:     authorInfo(users, post.UserID),
		LikesCount: len(post.Likes),
		Comments:   infos,
	})
}

// Update godoc
// @Summary      Update a post
// @Description  Author only. Omitted fields keep their stored value; updated_at always advances.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string                 true  "Post ID (hex)"
// @Param        data     body      dto.UpdatePostRequest  true  "Any subset of editable fields"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := mid.UIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "unauthorized"})
	}
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	var body dto.UpdatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
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
	if post.UserID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "forbidden"})
	}

	if body.Tags != nil {
		tags := services.NormalizeTags(*body.Tags)
		body.Tags = &tags
	}
	upd := model.PostUpdate{
		Title:   body.Title,
		Content: body.Content,
		Summary: body.Summary,
		Tags:    body.Tags,
	}
	if err := h.Posts.Apply(ctx, postID, upd, time.Now().UTC()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.JSON(dto.MessageResponse{Msg: "Post updated!"})
}

// Delete godoc
// @Summary      Delete a post
// @Description  Author only. Comments are not cascaded; they stay behind orphaned.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/{post_id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
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
	if post.UserID != uid {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "forbidden"})
	}

	if err := h.Posts.Delete(ctx, postID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: err.Error()})
	}

	return c.JSON(dto.MessageResponse{Msg: "Post deleted!"})
}
