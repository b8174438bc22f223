package service

import (
	"context"
	"errors"
	"time"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, input dto.RegisterRequest) error
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Login matches username and password by exact equality against the stored
// plaintext value. Hashing is deliberately absent: the seeded accounts store
// plaintext and switching schemes needs a versioned migration first.
func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByCredentials(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	redirect := "/student/dashboard"
	if user.IsAdmin() {
		redirect = "/admin/dashboard"
	}

	return &dto.AuthResponse{
		Token:      token,
		Username:   user.Username,
		Role:       user.Role,
		RedirectTo: redirect,
	}, nil
}

// Register creates a student account. Admin accounts are only ever seeded.
func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) error {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return apperror.Conflict("username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := &model.User{
		Username: input.Username,
		Password: input.Password,
		Role:     model.RoleStudent,
	}

	return s.repo.Create(ctx, user)
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
