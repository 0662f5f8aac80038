package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/dto"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/hash"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles admin authentication.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// GetCurrentUser resolves the token subject back to a live principal.
	// Deactivated accounts fail here even with a valid token.
	GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	hasher *hash.Hasher
	logger *zap.Logger
}

// NewAuthService builds the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	hasher *hash.Hasher,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		hasher: hasher,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. look up the principal
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	// 2. verify the password (Argon2id; single boolean branch)
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. a correct password on a deactivated account is still rejected
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. record the login
	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("last-login update failed", zap.Error(err))
		return nil, err
	}

	// 5. issue the access token
	token, err := s.jwtMgr.Generate(user.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
	}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("user lookup failed", zap.Error(err))
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}, nil
}
