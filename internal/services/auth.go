package services

import (
	"context"
	"errors"
	"time"

	"github.com/neurosensemed-IA/Med-FlashCards/internal/models"
	"github.com/neurosensemed-IA/Med-FlashCards/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenLifetime matches the 30-day session cookie the token travels in.
const tokenLifetime = 30 * 24 * time.Hour

// AuthStatus is the tri-state outcome of a login attempt.
type AuthStatus int

const (
	// AuthPending means no usable credentials were presented yet.
	AuthPending AuthStatus = iota
	AuthAuthenticated
	AuthRejected
)

var ErrUserExists = errors.New("username already taken")

type AuthService struct {
	users     storage.UserStore
	jwtSecret []byte
}

func NewAuthService(users storage.UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(ctx context.Context, name, email, username, password string) error {
	if _, err := s.users.GetUser(ctx, username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.CreateUser(ctx, &models.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login checks the credentials and, when they hold, returns a signed token.
// Bad credentials are a rejection, not an error; errors are reserved for the
// store being unreachable.
func (s *AuthService) Login(ctx context.Context, username, password string) (AuthStatus, string, error) {
	if username == "" || password == "" {
		return AuthPending, "", nil
	}

	user, err := s.users.GetUser(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return AuthRejected, "", nil
	}
	if err != nil {
		return AuthPending, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthRejected, "", nil
	}

	token, err := s.GenerateToken(username)
	if err != nil {
		return AuthPending, "", err
	}
	return AuthAuthenticated, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetUser(ctx, username)
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("invalid username in token")
	}

	return username, nil
}
