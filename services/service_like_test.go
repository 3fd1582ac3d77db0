package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToggleLike(t *testing.T) {
	a := bson.NewObjectID()
	b := bson.NewObjectID()

	likes, action := ToggleLike(nil, a)
	assert.Equal(t, ActionLiked, action)
	assert.Equal(t, []bson.ObjectID{a}, likes)

	likes, action = ToggleLike(likes, b)
	assert.Equal(t, ActionLiked, action)
	assert.Len(t, likes, 2)

	likes, action = ToggleLike(likes, a)
	assert.Equal(t, ActionUnliked, action)
	assert.Equal(t, []bson.ObjectID{b}, likes)

	likes, action = ToggleLike(likes, b)
	assert.Equal(t, ActionUnliked, action)
	assert.Empty(t, likes)
}

func TestToggleLikeDoesNotAliasInput(t *testing.T) {
	a := bson.NewObjectID()
	b := bson.NewObjectID()
	c := bson.NewObjectID()
	orig := []bson.ObjectID{a, b, c}

	removed, _ := ToggleLike(orig, a)
	assert.Equal(t, []bson.ObjectID{a, b, c}, orig)
	assert.Equal(t, []bson.ObjectID{b, c}, removed)
}
