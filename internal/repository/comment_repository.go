package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"inkwell/model"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) Insert(ctx context.Context, c *model.Comment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return bson.NilObjectID, err
	}
	c.ID = res.InsertedID.(bson.ObjectID)
	return c.ID, nil
}

// FindByIDs resolves a post's comment references; the caller re-orders by
// the post's list, which is insertion order.
func (r *CommentRepository) FindByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Comment, error) {
	out := make(map[bson.ObjectID]model.Comment, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	for _, c := range comments {
		out[c.ID] = c
	}
	return out, nil
}
