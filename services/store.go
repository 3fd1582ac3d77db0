package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inkwell/model"
)

// Store interfaces consumed by services and handlers, implemented by the
// Mongo repositories. Find* methods return (nil, nil) when the document is
// absent; callers decide what absence means.

type UserStore interface {
	Insert(ctx context.Context, u *model.User) (bson.ObjectID, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error)
}

type PostStore interface {
	Insert(ctx context.Context, p *model.Post) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	List(ctx context.Context, tag string, skip, limit int64) ([]model.Post, error)
	Count(ctx context.Context, tag string) (int64, error)
	Apply(ctx context.Context, id bson.ObjectID, upd model.PostUpdate, at time.Time) error
	Delete(ctx context.Context, id bson.ObjectID) error
	ReplaceLikes(ctx context.Context, id bson.ObjectID, likes []bson.ObjectID) error
	ReplaceComments(ctx context.Context, id bson.ObjectID, comments []bson.ObjectID) error
}

type CommentStore interface {
	Insert(ctx context.Context, c *model.Comment) (bson.ObjectID, error)
	FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Comment, error)
}
