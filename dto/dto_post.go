package dto

// AuthorInfo is the denormalized slice of a user embedded in post and
// comment responses.
type AuthorInfo struct {
	ID       string `json:"id"       example:"66c6248b98c56c39f018e7d2"`
	Username string `json:"username" example:"alice"`
	Avatar   string `json:"avatar"`
}

// ===== Requests =====

type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdatePostRequest takes any subset of the editable fields; omitted fields
// keep their stored value, so everything is a pointer.
type UpdatePostRequest struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Summary *string   `json:"summary,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// ===== Responses =====

type CreatePostResponse struct {
	Msg string `json:"msg" example:"Post created!"`
	ID  string `json:"id"  example:"68be742243c7f21d8421a0e7"`
}

// PostSummary is the list view: counts instead of the full sub-lists.
type PostSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Content       string     `json:"content"`
	Tags          []string   `json:"tags"`
	CreatedAt     string     `json:"created_at" example:"2025-09-07 13:47:47"`
	UpdatedAt     string     `json:"updated_at" example:"2025-09-07 13:47:47"`
	Author        AuthorInfo `json:"author"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
}

type PostListResponse struct {
	Posts   []PostSummary `json:"posts"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// PostDetail is the single-post view: the comment list comes back in full,
// each comment expanded with its author.
type PostDetail struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Summary    string        `json:"summary"`
	Tags       []string      `json:"tags"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
	Author     AuthorInfo    `json:"author"`
	LikesCount int           `json:"likes_count"`
	Comments   []CommentInfo `json:"comments"`
}

type LikeResponse struct {
	Msg        string `json:"msg"    example:"Post liked!"`
	Action     string `json:"action" example:"liked"`
	LikesCount int    `json:"likes_count"`
}
