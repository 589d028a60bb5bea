package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fitstore/fitstore-go/internal/crypto"
	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/repository"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	ErrUserNotFound          = errors.New("no user found for that email")
	ErrInvalidCredentials    = errors.New("invalid password")
	ErrDuplicateEmail        = errors.New("an account with that email already exists")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrInvalidOrExpiredToken = errors.New("this token is either invalid or expired")
)

// resetTokenTTL bounds how long an issued reset token stays valid.
const resetTokenTTL = time.Hour

// AuthService handles signup, signin, password reset and permission
// administration.
type AuthService struct {
	users  UserStore
	mailer ResetMailer
	secret string
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthService creates a new AuthService. secret signs session tokens.
func NewAuthService(users UserStore, mailer ResetMailer, secret string, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,
		secret: secret,
		logger: logger,
		now:    time.Now,
	}
}

// Signup registers a new user with the default USER permission and returns
// the user along with a fresh session token.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if name == "" {
		return nil, "", ErrNameRequired
	}
	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if password == "" {
		return nil, "", ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        model.NormalizeEmail(email),
		PasswordHash: hash,
		Permissions:  []string{model.PermissionUser},
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, err := crypto.GenerateToken(user.ID, s.secret)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed up", "user_id", user.ID)
	return user, token, nil
}

// Signin authenticates by email and password and returns the user along
// with a fresh session token.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.secret)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return user, token, nil
}

// RequestReset arms a one-hour reset token on the account and emails it to
// the user. The token is persisted before the mail goes out, so a delivery
// failure is logged but does not fail the request.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return err
	}
	expiry := s.now().Add(resetTokenTTL)

	if err := s.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.logger.Error("sending reset email failed", "user_id", user.ID, "error", err)
	}
	return nil
}

// ResetPassword consumes a reset token and sets a new password, returning
// the user and a fresh session token. The confirmation is checked before
// any store access. An absent, foreign or expired token all fail the same
// way so callers cannot tell which it was.
func (s *AuthService) ResetPassword(ctx context.Context, token, password, confirm string) (*model.User, string, error) {
	if password != confirm {
		return nil, "", ErrPasswordMismatch
	}
	if password == "" {
		return nil, "", ErrPasswordRequired
	}

	now := s.now()
	user, err := s.users.GetByResetToken(ctx, token, now)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, "", ErrInvalidOrExpiredToken
		}
		return nil, "", err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	// Conditional update: if a concurrent reset got here first, the token
	// is gone and this consume loses.
	if err := s.users.ConsumeResetToken(ctx, token, hash, now); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, "", ErrInvalidOrExpiredToken
		}
		return nil, "", err
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil

	sessionToken, err := crypto.GenerateToken(user.ID, s.secret)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("password reset", "user_id", user.ID)
	return user, sessionToken, nil
}

// UpdatePermissions replaces the target user's permission set wholesale.
// The caller must hold ADMIN or PERMISSIONUPDATE.
func (s *AuthService) UpdatePermissions(ctx context.Context, caller *model.User, targetID string, permissions []string) (*model.User, error) {
	if err := CheckPermission(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}

	for _, label := range permissions {
		if !model.ValidPermission(label) {
			return nil, fmt.Errorf("unknown permission %q", label)
		}
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.users.UpdatePermissions(ctx, target.ID, permissions); err != nil {
		return nil, err
	}

	target.Permissions = permissions
	s.logger.Info("permissions updated", "user_id", target.ID, "by", caller.ID)
	return target, nil
}

// Users lists all accounts. The caller must hold ADMIN or PERMISSIONUPDATE.
func (s *AuthService) Users(ctx context.Context, caller *model.User) ([]model.User, error) {
	if err := CheckPermission(caller, model.PermissionAdmin, model.PermissionPermissionUpdate); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}
