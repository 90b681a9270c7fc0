package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/auth"
	"github.com/paradise-nursery/storefront-backend/pkg/config"
	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	"github.com/paradise-nursery/storefront-backend/pkg/enums"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
	"github.com/paradise-nursery/storefront-backend/pkg/security"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type sessionRegistry interface {
	Create(ctx context.Context, tokenID string) error
	Revoke(ctx context.Context, tokenID string) error
}

// Service exposes registration, login and profile management.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Logout(ctx context.Context, tokenID string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*ProfileDTO, error)
}

type service struct {
	repo     *Repository
	tx       txRunner
	sessions sessionRegistry
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
}

// NewService builds an accounts service backed by the provided stack.
func NewService(repo *Repository, tx txRunner, sessions sessionRegistry, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("accounts repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{repo: repo, tx: tx, sessions: sessions, jwtCfg: jwtCfg, pwCfg: pwCfg}, nil
}

// Register creates the user and profile atomically, then issues a session.
func (s *service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	if len(input.Password) < 8 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}

	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking existing user")
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         enums.RoleCustomer,
		IsActive:     true,
	}
	profile := &models.Profile{
		ID:        uuid.New(),
		UserID:    user.ID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.CreateUser(ctx, user); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating user")
		}
		if _, err := txRepo.UpsertProfile(ctx, profile); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating profile")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

// Login verifies credentials and issues a fresh session.
func (s *service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "account is disabled")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording login")
	}
	user.LastLoginAt = &now

	return s.issueSession(ctx, user)
}

// Logout revokes the token's server-side session.
func (s *service) Logout(ctx context.Context, tokenID string) error {
	if strings.TrimSpace(tokenID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "token id is required")
	}
	if err := s.sessions.Revoke(ctx, tokenID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoking session")
	}
	return nil
}

// GetProfile returns the account plus its editable profile fields.
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	dto := &ProfileDTO{User: userDTO(user)}
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading profile")
		}
		return dto, nil
	}
	dto.FirstName = profile.FirstName
	dto.LastName = profile.LastName
	dto.Phone = profile.Phone
	return dto, nil
}

// UpdateProfile upserts the editable profile fields.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*ProfileDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "first and last name are required")
	}

	if _, err := s.repo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user")
	}

	profile := &models.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Phone:     input.Phone,
	}
	if _, err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving profile")
	}

	return s.GetProfile(ctx, userID)
}

func (s *service) issueSession(ctx context.Context, user *models.User) (*AuthResult, error) {
	jti := uuid.NewString()
	token, err := auth.MintAccessToken(s.jwtCfg, time.Now().UTC(), auth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		JTI:    jti,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}
	if err := s.sessions.Create(ctx, jti); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "registering session")
	}
	return &AuthResult{Token: token, User: userDTO(user)}, nil
}

func userDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
