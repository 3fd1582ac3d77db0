package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inkwell/internal/routes"
	"inkwell/model"
	"inkwell/services"
)

const testSecret = "test-secret-key"

// In-memory stand-ins for the Mongo repositories. Same contract: Find*
// returns (nil, nil) when the document is absent.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[bson.ObjectID]model.User)}
}

func (s *fakeUserStore) Insert(_ context.Context, u *model.User) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return bson.NilObjectID, services.ErrUsernameTaken
		}
	}
	u.ID = bson.NewObjectID()
	s.users[u.ID] = *u
	return u.ID, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (s *fakeUserStore) FindByIDs(_ context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[bson.ObjectID]model.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakePostStore struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[bson.ObjectID]model.Post)}
}

func (s *fakePostStore) Insert(_ context.Context, p *model.Post) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = bson.NewObjectID()
	s.posts[p.ID] = *p
	return p.ID, nil
}

func (s *fakePostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		out := p
		out.Likes = slices.Clone(p.Likes)
		out.Comments = slices.Clone(p.Comments)
		return &out, nil
	}
	return nil, nil
}

func (s *fakePostStore) matching(tag string) []model.Post {
	var out []model.Post
	for _, p := range s.posts {
		if tag == "" || slices.Contains(p.Tags, tag) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return bytes.Compare(out[i].ID[:], out[j].ID[:]) > 0
	})
	return out
}

func (s *fakePostStore) List(_ context.Context, tag string, skip, limit int64) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.matching(tag)
	if skip >= int64(len(all)) {
		return nil, nil
	}
	all = all[skip:]
	if limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakePostStore) Count(_ context.Context, tag string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.matching(tag))), nil
}

func (s *fakePostStore) Apply(_ context.Context, id bson.ObjectID, upd model.PostUpdate, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Summary != nil {
		p.Summary = *upd.Summary
	}
	if upd.Tags != nil {
		p.Tags = *upd.Tags
	}
	p.UpdatedAt = at
	s.posts[id] = p
	return nil
}

func (s *fakePostStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

func (s *fakePostStore) ReplaceLikes(_ context.Context, id bson.ObjectID, likes []bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		p.Likes = slices.Clone(likes)
		s.posts[id] = p
	}
	return nil
}

func (s *fakePostStore) ReplaceComments(_ context.Context, id bson.ObjectID, comments []bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		p.Comments = slices.Clone(comments)
		s.posts[id] = p
	}
	return nil
}

type fakeCommentStore struct {
	mu       sync.Mutex
	comments map[bson.ObjectID]model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[bson.ObjectID]model.Comment)}
}

func (s *fakeCommentStore) Insert(_ context.Context, c *model.Comment) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = bson.NewObjectID()
	s.comments[c.ID] = *c
	return c.ID, nil
}

func (s *fakeCommentStore) FindByIDs(_ context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[bson.ObjectID]model.Comment, len(ids))
	for _, id := range ids {
		if c, ok := s.comments[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

// ===== app + request helpers =====

type testEnv struct {
	app      *fiber.App
	users    *fakeUserStore
	posts    *fakePostStore
	comments *fakeCommentStore
}

func newTestEnv() *testEnv {
	users := newFakeUserStore()
	posts := newFakePostStore()
	comments := newFakeCommentStore()
	app := routes.NewApp(routes.Deps{
		Users:     users,
		Posts:     posts,
		Comments:  comments,
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	})
	return &testEnv{app: app, users: users, posts: posts, comments: comments}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		// non-JSON bodies (healthz) just leave decoded nil
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func (e *testEnv) register(t *testing.T, username, password string) {
	t.Helper()
	resp, _ := e.do(t, "POST", "/api/register", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, body := e.do(t, "POST", "/api/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (e *testEnv) createPost(t *testing.T, token string, payload map[string]any) string {
	t.Helper()
	resp, body := e.do(t, "POST", "/api/posts", token, payload)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// seedPost inserts a post directly, with an explicit creation time so
// ordering tests are deterministic.
func (e *testEnv) seedPost(t *testing.T, author bson.ObjectID, title string, tags []string, createdAt time.Time) bson.ObjectID {
	t.Helper()
	id, err := e.posts.Insert(context.Background(), &model.Post{
		Title:     title,
		Content:   "content of " + title,
		Tags:      tags,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		UserID:    author,
		Likes:     []bson.ObjectID{},
		Comments:  []bson.ObjectID{},
	})
	require.NoError(t, err)
	return id
}

func mustObjectID(t *testing.T, hex string) bson.ObjectID {
	t.Helper()
	id, err := bson.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func (e *testEnv) seedUser(t *testing.T, username string) bson.ObjectID {
	t.Helper()
	id, err := e.users.Insert(context.Background(), &model.User{
		Username: username,
		Password: "x",
		Avatar:   "https://cdn.example.com/" + username + ".png",
	})
	require.NoError(t, err)
	return id
}
