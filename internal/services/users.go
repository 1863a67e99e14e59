package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wellnest/wellnest-server/internal/auth"
	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

// UserService handles registration, login and profile access.
type UserService struct {
	store      store.Store
	signer     *auth.Signer
	bcryptCost int
}

func NewUserService(s store.Store, signer *auth.Signer, bcryptCost int) *UserService {
	return &UserService{store: s, signer: signer, bcryptCost: bcryptCost}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Sport    *string
	Age      *int
	Gender   *string
}

// Register creates an account and returns the user with a fresh token.
// Emails are lowercased and trimmed before storage, so uniqueness is
// case-insensitive.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	if len(in.Password) < auth.MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, auth.MinPasswordLength)
	}
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}
	u := &model.User{
		Email:        normalizeEmail(in.Email),
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: hash,
		Sport:        in.Sport,
		Age:          in.Age,
		Gender:       in.Gender,
	}
	created, err := s.store.Users().Create(ctx, u)
	if err != nil {
		return nil, "", err
	}
	token, err := s.signer.Issue(created.UserID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// A missing account and a wrong password both yield ErrInvalidCredentials
// so a caller cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", model.ErrInvalidCredentials
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", model.ErrInvalidCredentials
	}
	token, err := s.signer.Issue(u.UserID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().GetByID(ctx, userID)
}

// UpdateProfile applies a partial update. Email and password are not
// settable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error) {
	return s.store.Users().Update(ctx, userID, upd)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
