package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storycrafter/internal/models"
	"storycrafter/internal/repositories"
)

var (
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService manages Story API accounts.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.UserAccount, error)
	Authenticate(ctx context.Context, email, password string) (*models.UserAccount, error)
	Get(ctx context.Context, id uint) (*models.UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	UpdateName(ctx context.Context, id uint, name string) (*models.UserAccount, error)
}

type userService struct {
	users repositories.UserRepository
	cost  int
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users, cost: bcrypt.DefaultCost}
}

// NewUserServiceWithCost lets tests trade hash strength for speed.
func NewUserServiceWithCost(users repositories.UserRepository, cost int) UserService {
	return &userService{users: users, cost: cost}
}

func (s *userService) Register(ctx context.Context, email, password string) (*models.UserAccount, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.UserAccount{Email: email, HashedPassword: string(hash)}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistered
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.UserAccount, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.UserAccount, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *userService) UpdateName(ctx context.Context, id uint, name string) (*models.UserAccount, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = name
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
