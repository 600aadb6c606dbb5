package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"servidoc/internal/auth"
	"servidoc/internal/model"
	"servidoc/internal/repository"
)

// UserService defines the credential use cases: account registration and
// login. Tokens are issued on login but no endpoint is gated on them.
type UserService interface {
	// Register stores a new account with a salted password hash.
	// Fails with ErrMissingFields or ErrInvalidRole on bad input and
	// ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)

	// Login verifies the credentials and returns a signed access token
	// encoding the user's id and role. Fails with ErrMissingFields when
	// either field is empty and ErrInvalidCredentials otherwise — a missing
	// account and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, error)
}

type userService struct {
	repo       repository.UserRepository
	tokens     *auth.TokenIssuer
	bcryptCost int
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository, tokens *auth.TokenIssuer, bcryptCost int) UserService {
	return &userService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *userService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" || role == "" {
		return nil, ErrMissingFields
	}
	if role != model.RoleManager && role != model.RoleCommon {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return stored, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(auth.Identity{UserID: u.ID, Role: u.Role})
}
