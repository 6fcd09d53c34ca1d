package impl

import (
	"context"
	"log/slog"
	"strings"

	"pristol/config"
	"pristol/internal/domain/constants"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/domain/service"
	"pristol/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. Credentials are checked
// against the external auth service; session tokens are issued locally.
type authService struct {
	verifier service.CredentialVerifier
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	verifier service.CredentialVerifier,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		verifier: verifier,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login maps a bare username to the configured email domain, verifies the
// credentials, and issues access/refresh tokens. Every failure surfaces as
// the same generic invalid-credentials error; the cause is only logged.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := input.Username
	if !strings.Contains(email, "@") {
		email = email + "@" + srv.cfg.Auth.EmailDomain
	}

	uid, err := srv.verifier.VerifyPassword(ctx, email, input.Password)
	if err != nil {
		srv.logger.Warn("admin login rejected", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "verify password")
	}

	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(uid, []string{constants.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	srv.logger.Info("admin logged in", slog.String("email", email))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Email:        email,
	}, nil
}
