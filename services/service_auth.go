package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"inkwell/model"
)

var ErrUsernameTaken = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService owns credential checks and token issuance. Tokens are
// stateless: HS256, user id in the subject claim, verified per request by
// signature and expiry only.
type AuthService struct {
	Users    UserStore
	Secret   string
	TokenTTL time.Duration
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	existing, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// The unique index on username backstops the check above: a concurrent
	// registration loses here with a duplicate-key error.
	_, err = s.Users.Insert(ctx, &model.User{
		Username: username,
		Password: string(hash),
	})
	return err
}

// Login verifies the password hash and returns a signed bearer token plus
// the stored username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", "", err
	}
	return token, user.Username, nil
}

func (s *AuthService) IssueToken(uid bson.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}
