package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full path a first user takes through the API: register, a rejected
// duplicate registration, login, post, read it back, toggle a like twice,
// comment.
func TestRegisterToCommentFlow(t *testing.T) {
	env := newTestEnv()

	resp, _ := env.do(t, "POST", "/api/register", "", map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = env.do(t, "POST", "/api/register", "", map[string]string{"username": "alice", "password": "pw2"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body := env.do(t, "POST", "/api/login", "", map[string]string{"username": "alice", "password": "pw1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := body["access_token"].(string)
	require.NotEmpty(t, token)

	resp, body = env.do(t, "POST", "/api/posts", token, map[string]any{"title": "T", "content": "C"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	postID := body["id"].(string)
	require.NotEmpty(t, postID)

	resp, body = env.do(t, "GET", "/api/posts/"+postID, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["author"].(map[string]any)["username"])
	assert.EqualValues(t, 0, body["likes_count"])

	resp, body = env.do(t, "POST", "/api/posts/"+postID+"/like", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "liked", body["action"])
	assert.EqualValues(t, 1, body["likes_count"])

	resp, body = env.do(t, "POST", "/api/posts/"+postID+"/like", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "unliked", body["action"])
	assert.EqualValues(t, 0, body["likes_count"])

	resp, _ = env.do(t, "POST", "/api/posts/"+postID+"/comments", token, map[string]any{"content": "hi"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = env.do(t, "GET", "/api/posts/"+postID, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["comments"].([]any), 1)
}
