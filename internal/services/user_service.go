package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/models"
	repo "github.com/ecetopal/familytree-backend/internal/repository"
)

type UserService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewUserService(users repo.Users, tm *auth.TokenManager) *UserService {
	return &UserService{users: users, tm: tm}
}

func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	u := models.User{Username: strings.TrimSpace(username), Email: strings.TrimSpace(email)}
	if err := u.Validate(); err != nil {
		return models.User{}, Invalid(err.Error())
	}
	if len(password) < 8 {
		return models.User{}, Invalid("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	created, err := s.users.Create(ctx, u.Username, u.Email, hash)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, Conflict("email already registered")
	}
	return created, err
}

// Login returns an access+refresh pair for an owner session.
func (s *UserService) Login(ctx context.Context, email, password string) (access, refresh string, err error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return "", "", Unauthorized("invalid credentials")
	}
	if err != nil {
		return "", "", err
	}
	if auth.VerifyPassword(password, u.PasswordHash) != nil {
		return "", "", Unauthorized("invalid credentials")
	}
	access, refresh, _, err = s.tm.GeneratePair(u.ID)
	return access, refresh, err
}

// Refresh rotates a token pair. Guest bindings carry over unchanged.
func (s *UserService) Refresh(refreshToken string) (access, refresh string, err error) {
	claims, isRefresh, err := s.tm.ParseAny(refreshToken)
	if err != nil || !isRefresh {
		return "", "", Unauthorized("invalid refresh token")
	}
	if claims.Role == auth.RoleGuest {
		access, refresh, _, err = s.tm.GenerateGuestPair(claims.UserID, claims.TreeID, claims.MemberID)
		return access, refresh, err
	}
	access, refresh, _, err = s.tm.GeneratePair(claims.UserID)
	return access, refresh, err
}
