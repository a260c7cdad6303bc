package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/quangdng/folio-hub/internal/domain/user"
	"github.com/quangdng/folio-hub/pkg/apperror"
	"github.com/quangdng/folio-hub/pkg/auth"
	"github.com/quangdng/folio-hub/pkg/logger"
)

var ErrInvalidCredentials = errors.New("email or password is incorrect")

// TokenStore keeps revoked token IDs until the token would have expired.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthUseCase struct {
	userRepo   user.Repository
	jwtSvc     *auth.JWTService
	tokenStore TokenStore
	logger     logger.Logger
}

func NewAuthUseCase(repo user.Repository, jwtSvc *auth.JWTService, tokens TokenStore, log logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   repo,
		jwtSvc:     jwtSvc,
		tokenStore: tokens,
		logger:     log,
	}
}

var tracer = otel.Tracer("auth_usecase")

type SignupInput struct {
	Email    string
	Name     string
	Password string
}

type SignupOutput struct {
	UserID      uuid.UUID
	AccessToken string
}

func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token after signup", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &SignupOutput{UserID: u.ID, AccessToken: token}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewUnauthorized("unknown email", ErrInvalidCredentials)
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{AccessToken: token}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (uc *AuthUseCase) Logout(ctx context.Context, claims *auth.CustomClaims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return uc.tokenStore.Revoke(ctx, claims.ID, ttl)
}
