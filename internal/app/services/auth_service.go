package services

import (
	"context"
	"errors"
	"time"

	"github.com/edukta/backend/internal/app/models"
	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/repositories"
	"github.com/edukta/backend/internal/pkg/apperrors"
	"github.com/edukta/backend/internal/pkg/auth"
	"github.com/edukta/backend/internal/pkg/email"
	"github.com/edukta/backend/internal/pkg/logger"
	"github.com/edukta/backend/internal/pkg/oauth"
)

// AuthService handles sign-in, registration and token lifecycle.
type AuthService struct {
	userRepo     repositories.IUserRepository
	tokenRepo    repositories.ITokenRepository
	jwtService   *auth.JWTService
	encrypter    *auth.Encrypter
	emailService email.Service
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	encrypter *auth.Encrypter,
	emailService email.Service,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		encrypter:    encrypter,
		emailService: emailService,
	}
}

// SignIn authenticates a user by email and password and issues a token pair.
func (s *AuthService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	// Google-only accounts have no local password.
	if user.Password == "" || !s.encrypter.Check(user.Password, req.Password) {
		return nil, apperrors.ErrWrongPassword
	}

	return s.issueTokens(ctx, user)
}

// Register creates a student account and sends a welcome email. The role is
// always student; privileged accounts are created through AdminRegister.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.register(ctx, req, models.RoleStudent)
}

// AdminRegister creates an account with an explicit role.
func (s *AuthService) AdminRegister(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AuthResponse, error) {
	role := req.RoleID
	if role == 0 {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}
	return s.register(ctx, &req.RegisterRequest, role)
}

func (s *AuthService) register(ctx context.Context, req *dto.RegisterRequest, role models.Role) (*dto.AuthResponse, error) {
	hashed, err := s.encrypter.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: hashed,
		RoleID:   role,
		Phone:    req.Phone,
		Degree:   req.Degree,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	// Welcome email is best effort. Registration already succeeded.
	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// SignOut revokes the presented refresh token. A token that is already gone
// is not an error.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	err := s.tokenRepo.Revoke(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

// GetOrCreateGoogleUser resolves a Google profile to a local account,
// creating a student account on first sign-in. Accounts created earlier with
// the same email are linked to the Google ID.
func (s *AuthService) GetOrCreateGoogleUser(ctx context.Context, gu *oauth.GoogleUser) (*models.User, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, gu.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.userRepo.GetByEmail(ctx, gu.Email)
	if err == nil {
		user.GoogleID = &gu.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to link Google account")
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	googleID := gu.ID
	user = &models.User{
		Name:     gu.GivenName,
		Surname:  gu.FamilyName,
		Email:    gu.Email,
		RoleID:   models.RoleStudent,
		GoogleID: &googleID,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	return user, nil
}

// CurrentUser loads the account behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// IssueTokensFor generates and persists a token pair for an already
// authenticated user, e.g. after an OAuth callback.
func (s *AuthService) IssueTokensFor(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	_, err = s.tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.FromUser(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}
