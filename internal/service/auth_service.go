package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonylane/studio-admin-api/internal/models"
	"github.com/harmonylane/studio-admin-api/internal/store"
	appErrors "github.com/harmonylane/studio-admin-api/pkg/errors"
)

// AuthConfig carries token issuance parameters.
type AuthConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// AuthService handles sign-in, token validation and staff profile management.
type AuthService struct {
	users     *store.UserStore
	cfg       AuthConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(users *store.UserStore, cfg AuthConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, cfg: cfg, validator: validate, logger: logger}
}

// Login verifies credentials and issues an HS256 access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.LoginResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return models.LoginResponse{}, appErrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return models.LoginResponse{}, appErrors.ErrInvalidCredentials
	}
	if user.Status != models.StudentStatusActive {
		return models.LoginResponse{}, appErrors.ErrInactiveAccount
	}

	now := time.Now()
	claims := models.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return models.LoginResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign token")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.cfg.Expiry.Seconds()),
		IssuedAt:    now,
		User:        user,
	}, nil
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

// GetProfile returns the account behind a token's user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return models.User{}, translateStoreError(err, "account not found")
	}
	return user, nil
}

// UpdateProfile replaces the editable profile fields of the signed-in account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	user, err := s.users.UpdateProfile(userID, req)
	if err != nil {
		return models.User{}, translateStoreError(err, "account not found")
	}
	s.logger.Info("profile updated", zap.String("user_id", userID))
	return user, nil
}

// ChangePassword verifies the current password and stores a new bcrypt hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid password payload")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return translateStoreError(err, "account not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "hash password")
	}
	if err := s.users.UpdatePassword(userID, string(hash)); err != nil {
		return translateStoreError(err, "account not found")
	}
	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}
