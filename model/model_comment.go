package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	PostID    bson.ObjectID `json:"postId"    bson:"post_id"`
}
