package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService registers accounts, checks credentials and issues tokens.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult carries the issued token and the account it identifies.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

type RegisterInput struct {
	Name     string
	Age      int
	Username string
	Email    string
	Password string
}

// Register creates an account and issues a token for it. Duplicate emails
// and usernames fail with ErrUserExists.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if _, err := s.Users.GetByEmail(in.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:     in.Name,
		Age:      in.Age,
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.Users.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent registration.
			return nil, ErrUserExists
		}
		return nil, err
	}
	return s.issue(u)
}

// Login checks email/password and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// GetUser looks up an account by id for the profile route.
func (s *AuthService) GetUser(id string) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token generation failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u}, nil
}
