package service

import (
	"context"
	"errors"

	"github.com/gymdesk/gymdesk-backend/internal/apperrors"
	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/repository"
	"github.com/gymdesk/gymdesk-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = apperrors.Invalidf("email already used")
	ErrInvalidCredentials = apperrors.Invalidf("invalid credentials")
)

type AuthService interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error)
	Login(ctx context.Context, email, password string) (*models.User, *token.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (*token.Pair, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error) {
	if password == "" {
		return nil, nil, apperrors.Invalidf("password must not be empty")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user, err := models.NewUser(email, firstName, lastName, string(hash), models.RoleUser)
	if err != nil {
		return nil, nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, *token.Pair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// re-read so the new tokens carry the current role, not the one captured at
// login.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*token.Pair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.Invalidf("invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, notFoundOr(err, "user %d does not exist", claims.UserID)
	}

	return s.tokens.GeneratePair(user)
}
