package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
	"github.com/forgestack/atlas-backend/pkg/util"
)

const resetTokenTTL = time.Hour

// AuthService handles registration, login and the token lifecycle. All
// credential failures surface as the same vague unauthorized error so
// responses cannot be used to enumerate which accounts exist.
type AuthService struct {
	users  repository.IUserRepository
	tokens *auth.TokenService
	mailer *Mailer
	logger *zap.Logger
}

func NewAuthService(users repository.IUserRepository, tokens *auth.TokenService, mailer *Mailer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer, logger: logger}
}

// Register creates a pending client account and sends a verification link.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("user", "email")
	} else if !errors.Is(err, generic.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	verifyToken, verifyDigest, err := auth.GenerateResetToken()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:       email,
		Password:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        model.RoleClient,
		Status:      model.StatusPending,
		Permissions: []string{},
		Metadata: model.UserMetadata{
			VerificationTokenHash: verifyDigest,
		},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.mailer.SendVerification(user.Email, verifyToken)
	s.logger.Info("user registered", zap.String("userId", user.ID.Hex()))
	return user, nil
}

// Login verifies credentials and issues a token pair. Suspended and inactive
// accounts are rejected before the password is even compared; failed
// password checks increment the attempt counter but do not lock the account.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, *auth.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, nil, apperr.Unauthorized("")
		}
		return nil, nil, err
	}

	if user.Status == model.StatusSuspended || user.Status == model.StatusInactive {
		return nil, nil, apperr.Unauthorized("")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		if err := s.users.IncrementLoginAttempts(ctx, user.ID); err != nil {
			s.logger.Warn("failed to record login attempt", zap.Error(err))
		}
		return nil, nil, apperr.Unauthorized("")
	}

	if err := s.users.RecordLogin(ctx, user.ID, time.Now()); err != nil {
		s.logger.Warn("failed to record login", zap.Error(err))
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh redeems a refresh token for a fresh pair. Permissions are
// re-derived from the stored user at this point, not from the old token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	id, err := util.ParseObjectID(claims.Subject)
	if err != nil {
		return nil, apperr.TokenInvalid()
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.Unauthorized("")
		}
		return nil, err
	}
	if user.Status == model.StatusSuspended || user.Status == model.StatusInactive {
		return nil, apperr.Unauthorized("")
	}

	return s.tokens.IssuePair(user)
}

// Me returns the account behind an access token subject.
func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	id, err := util.ParseObjectID(userID)
	if err != nil {
		return nil, apperr.NotFound("user")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile merges the supplied profile fields onto the account.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyString(&user.FirstName, req.FirstName)
	applyString(&user.LastName, req.LastName)
	applyString(&user.DisplayName, req.DisplayName)
	applyString(&user.Profile.Bio, req.Bio)
	applyString(&user.Profile.Phone, req.Phone)
	applyString(&user.Profile.Location, req.Location)
	applyString(&user.Profile.Department, req.Department)
	applyString(&user.Profile.Position, req.Position)
	applyString(&user.Profile.Company, req.Company)

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before replacing it.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return apperr.Unauthorized("")
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	user.Password = hash
	user.Security.PasswordChangedAt = &now
	return s.users.Replace(ctx, user)
}

// ForgotPassword stores a hashed reset token with a one-hour expiry. The
// success response is identical whether or not the account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil
		}
		return err
	}

	token, digest, err := auth.GenerateResetToken()
	if err != nil {
		return err
	}
	expires := time.Now().Add(resetTokenTTL)
	user.Metadata.ResetTokenHash = digest
	user.Metadata.ResetTokenExpiresAt = &expires
	if err := s.users.Replace(ctx, user); err != nil {
		return err
	}

	s.mailer.SendPasswordReset(user.Email, token)
	return nil
}

// ResetPassword redeems a reset token. The token is single use: the stored
// hash is cleared on success.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.users.FindByResetTokenHash(ctx, auth.HashToken(req.Token))
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return apperr.TokenInvalid()
		}
		return err
	}
	if user.Metadata.ResetTokenExpiresAt == nil || time.Now().After(*user.Metadata.ResetTokenExpiresAt) {
		return apperr.TokenExpired()
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	now := time.Now()
	user.Password = hash
	user.Security.PasswordChangedAt = &now
	user.Metadata.ResetTokenHash = ""
	user.Metadata.ResetTokenExpiresAt = nil
	return s.users.Replace(ctx, user)
}

// VerifyEmail redeems a single-use verification token, activating the
// account.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return apperr.TokenInvalid()
		}
		return err
	}
	user.Metadata.EmailVerified = true
	user.Metadata.VerificationTokenHash = ""
	if user.Status == model.StatusPending {
		user.Status = model.StatusActive
	}
	return s.users.Replace(ctx, user)
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
