package credentials

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ewok0116/CS308-Project/internal/store"
	"github.com/ewok0116/CS308-Project/internal/users"
)

var (
	ErrMissingFields      = errors.New("email, password and name are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const MinPasswordLength = 6

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Address  string
}

type Service struct {
	users *users.Store
}

func NewService(users *users.Store) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*users.User, error) {

	// 1. Required fields
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, ErrMissingFields
	}

	// 2. Email shape
	if err := validation.Validate(in.Email, is.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	// 3. Password length
	if err := validation.Validate(in.Password, validation.Length(MinPasswordLength, 0)); err != nil {
		return nil, ErrPasswordTooShort
	}

	// 4. Email uniqueness (case-sensitive exact match)
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	// 5. Persist with the next sequential id
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &users.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Address:  in.Address,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		// hide whether the email exists or not
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(u.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
