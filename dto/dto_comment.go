package dto

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentInfo struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	CreatedAt string     `json:"created_at" example:"2025-09-07 13:47:47"`
	Author    AuthorInfo `json:"author"`
}

type CommentCreatedResponse struct {
	Msg     string      `json:"msg" example:"Comment added!"`
	Comment CommentInfo `json:"comment"`
}
