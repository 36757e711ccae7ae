package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/pkg/logging"
)

// RegisterInput is the payload for creating an account
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	NumberPhone string `json:"number_phone"`
}

// AccountService owns the user write path. Every write runs the staff
// normalization: a staff user is always active, never the reverse.
type AccountService struct {
	users  *db.UserRepository
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(users *db.UserRepository) *AccountService {
	return &AccountService{
		users:  users,
		logger: logging.WithComponent("account-service"),
	}
}

// Register creates a user with a bcrypt-hashed password
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, NewValidation("username is required")
	}
	if input.Password == "" {
		return nil, NewValidation("password is required")
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidation("username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    username,
		Email:       input.Email,
		Password:    string(hash),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		NumberPhone: input.NumberPhone,
		IsActive:    true,
		DateJoined:  time.Now().UTC(),
	}
	user.Normalize()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Authenticate checks credentials and returns the user on success
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// GetUser returns a user by id
func (s *AccountService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFound("user")
	}
	return user, nil
}

// GetProfile returns a user with memberships preloaded
func (s *AccountService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetWithMemberships(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFound("user")
	}
	return user, nil
}

// Update persists profile changes after normalization
func (s *AccountService) Update(ctx context.Context, user *models.User) error {
	user.Normalize()
	return s.users.Update(ctx, user)
}
