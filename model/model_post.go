package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post keeps likers and comments as lists of references, the same shape the
// documents have in Mongo. Likes has set semantics (membership by user id).
type Post struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Title     string          `json:"title"     bson:"title"`
	Content   string          `json:"content"   bson:"content"`
	Summary   string          `json:"summary"   bson:"summary"`
	Tags      []string        `json:"tags"      bson:"tags"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
	UserID    bson.ObjectID   `json:"userId"    bson:"user_id"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	Comments  []bson.ObjectID `json:"comments"  bson:"comments"`
}

// PostUpdate carries a partial update; nil means "leave the field alone".
type PostUpdate struct {
	Title   *string
	Content *string
	Summary *string
	Tags    *[]string
}
