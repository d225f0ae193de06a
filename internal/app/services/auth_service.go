package services

import (
	"context"
	"errors"
	"strings"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/auth"
)

// AuthService handles account registration and login
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, string, int, error)
	Register(ctx context.Context, username, password, fullName, email string) (*models.User, error)
}

type authService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token carrying the role.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, int, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	return user, token, expiresIn, nil
}

// Register creates a read-only account. Admin accounts are only seeded or
// promoted directly in the database.
func (s *authService) Register(ctx context.Context, username, password, fullName, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	fullName = strings.TrimSpace(fullName)

	if username == "" || password == "" || fullName == "" {
		return nil, apperrors.NewBadRequestError("Please fill in all required fields")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		FullName: fullName,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
