package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/auth"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/company"
	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/user"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	jwtSvc      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, companyRepo company.CompanyRepository, jwtSvc jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSvc:      jwtSvc,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// The tenant must still exist; tokens carry its id in every claim.
	if _, err := a.companyRepo.GetByID(ctx, userData.CompanyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtSvc.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	token, err := a.jwtSvc.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	// Rotate: old refresh token cannot be replayed.
	a.jwtSvc.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtSvc.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresAt, err = a.jwtSvc.GenerateAccessToken(
		userData.ID, userData.Email, userData.CompanyID, userData.Role,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresAt, err = a.jwtSvc.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return resp, nil
}
