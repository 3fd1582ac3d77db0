package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inkwell/model"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func tagFilter(tag string) bson.M {
	filter := bson.M{}
	if tag != "" {
		// tags is an array; equality matches membership
		filter["tags"] = tag
	}
	return filter
}

func (r *PostRepository) Insert(ctx context.Context, p *model.Post) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, err
	}
	p.ID = res.InsertedID.(bson.ObjectID)
	return p.ID, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page of posts, newest first.
func (r *PostRepository) List(ctx context.Context, tag string, skip, limit int64) ([]model.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, tagFilter(tag), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count is the full filtered count, independent of pagination.
func (r *PostRepository) Count(ctx context.Context, tag string) (int64, error) {
	return r.col.CountDocuments(ctx, tagFilter(tag))
}

// Apply writes the provided fields and always refreshes updated_at, even
// when upd is empty.
func (r *PostRepository) Apply(ctx context.Context, id bson.ObjectID, upd model.PostUpdate, at time.Time) error {
	set := bson.M{"updated_at": at}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Summary != nil {
		set["summary"] = *upd.Summary
	}
	if upd.Tags != nil {
		set["tags"] = *upd.Tags
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ReplaceLikes stores the whole likers list. The caller read the post first,
// so concurrent toggles on the same post are last-write-wins.
func (r *PostRepository) ReplaceLikes(ctx context.Context, id bson.ObjectID, likes []bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"likes": likes}})
	return err
}

// ReplaceComments stores the whole comment-reference list, same caveat as
// ReplaceLikes.
func (r *PostRepository) ReplaceComments(ctx context.Context, id bson.ObjectID, comments []bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"comments": comments}})
	return err
}
