package services

import (
	"context"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(token string) error
	Verify(token string) (*auth.Claims, error)
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	tokens    *auth.TokenIssuer
	blacklist *auth.Blacklist
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenIssuer,
	blacklist *auth.Blacklist,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// Login authenticates by email and password and issues an access token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		Role:        user.Role,
		TokenType:   "bearer",
	}, nil
}

// Logout revokes the token. Idempotent; revoking an unknown token is a no-op
// from the caller's perspective.
func (s *AuthServiceImpl) Logout(token string) error {
	if err := s.blacklist.Revoke(token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Verify checks revocation before decoding, so a revoked token fails even
// while its signature and expiry are still valid.
func (s *AuthServiceImpl) Verify(token string) (*auth.Claims, error) {
	if s.blacklist.IsRevoked(token) {
		return nil, apperrors.ErrTokenRevoked
	}
	return s.tokens.Parse(token)
}
