package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"gotham/internal/models/db_models"
	"gotham/internal/models/response_models"
	"gotham/internal/repositories"
	"gotham/pkg/memcache"
	"gotham/pkg/utils"
)

type AuthServiceInterface interface {
	// RequestLoginLink mails a single-use sign-in link. No account needs to
	// exist yet; the identity row is created lazily on first verification.
	RequestLoginLink(ctx context.Context, email string) error

	// VerifyLoginLink consumes the link token and returns a session.
	VerifyLoginLink(ctx context.Context, token string) (*response_models.SessionResponse, error)

	// ResolveUser maps a session user id to the authoritative DB row.
	ResolveUser(ctx context.Context, userID string) (*db_models.User, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	mail     IMailService
	tokens   memcache.LoginTokenStore
	linkTTL  time.Duration
	logger   *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	mail IMailService,
	tokens memcache.LoginTokenStore,
	linkTTL time.Duration,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
		mail:     mail,
		tokens:   tokens,
		linkTTL:  linkTTL,
		logger:   logger,
	}
}

func (a *AuthService) RequestLoginLink(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return utils.ErrInvalidInput
	}

	selector, err := utils.GenerateSecureToken(8)
	if err != nil {
		return err
	}
	verifier, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	verifierHash, err := utils.HashVerifier(verifier)
	if err != nil {
		return err
	}

	a.tokens.Set(selector, email, verifierHash, a.linkTTL)

	// The mailed token carries both halves; only the hash stays server-side.
	if err := a.mail.SendSignInLink(email, selector+"."+verifier); err != nil {
		a.logger.Error("sign-in mail failed", zap.String("email", email), zap.Error(err))
		return err
	}

	return nil
}

func (a *AuthService) VerifyLoginLink(ctx context.Context, token string) (*response_models.SessionResponse, error) {
	selector, verifier, found := strings.Cut(token, ".")
	if !found || selector == "" || verifier == "" {
		return nil, utils.ErrInvalidToken
	}

	email, verifierHash, ok := a.tokens.Consume(selector)
	if !ok {
		return nil, utils.ErrInvalidToken
	}
	if err := utils.CompareVerifier(verifierHash, verifier); err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.userRepo.EnsureByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	jwt, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	return &response_models.SessionResponse{
		Token: jwt,
		User: response_models.UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

func (a *AuthService) ResolveUser(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
