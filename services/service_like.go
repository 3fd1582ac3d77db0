package services

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// ToggleLike flips uid's membership in the likers set and reports which way
// it went. Membership is by user id. The caller persists the returned slice,
// so concurrent toggles on the same post are last-write-wins.
func ToggleLike(likes []bson.ObjectID, uid bson.ObjectID) ([]bson.ObjectID, string) {
	for i, id := range likes {
		if id == uid {
			return append(likes[:i:i], likes[i+1:]...), ActionUnliked
		}
	}
	return append(likes, uid), ActionLiked
}
