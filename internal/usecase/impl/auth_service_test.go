package impl

import (
	"context"
	"testing"
	"time"

	"pristol/config"
	domainerrors "pristol/internal/domain/errors"
	"pristol/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier accepts a single email/password pair.
type fakeVerifier struct {
	email    string
	password string
	uid      string

	lastEmail string
}

func (v *fakeVerifier) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	v.lastEmail = email
	if email == v.email && password == v.password {
		return v.uid, nil
	}

	return "", errors.New("credentials rejected")
}

// fakeTokenService returns canned tokens.
type fakeTokenService struct {
	err error
}

func (s *fakeTokenService) GenerateTokens(subject string, roles []string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}

	return "access-" + subject, "refresh-" + subject, nil
}

func (s *fakeTokenService) ValidateToken(tokenString, secret string) (*jwt.Token, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

func newTestAuth(verifier *fakeVerifier, tokenSvc *fakeTokenService) usecase.AuthUsecase {
	cfg := &config.Config{
		Auth: &config.AuthConfig{EmailDomain: "pristol.app"},
	}

	return NewAuthService(verifier, tokenSvc, cfg, discardLogger())
}

func TestAuthService_Login(t *testing.T) {
	verifier := &fakeVerifier{email: "admin@pristol.app", password: "s3cret", uid: "uid-1"}
	auth := newTestAuth(verifier, &fakeTokenService{})

	output, err := auth.Login(context.Background(), &usecase.LoginInput{
		Username: "admin@pristol.app",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-uid-1", output.AccessToken)
	assert.Equal(t, "refresh-uid-1", output.RefreshToken)
	assert.Equal(t, "admin@pristol.app", output.Email)
}

func TestAuthService_Login_AppendsEmailDomain(t *testing.T) {
	verifier := &fakeVerifier{email: "admin@pristol.app", password: "s3cret", uid: "uid-1"}
	auth := newTestAuth(verifier, &fakeTokenService{})

	output, err := auth.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@pristol.app", verifier.lastEmail, "bare username mapped to the configured domain")
	assert.Equal(t, "admin@pristol.app", output.Email)
}

func TestAuthService_Login_KeepsExplicitDomain(t *testing.T) {
	verifier := &fakeVerifier{email: "ops@other.example", password: "pw", uid: "uid-2"}
	auth := newTestAuth(verifier, &fakeTokenService{})

	_, err := auth.Login(context.Background(), &usecase.LoginInput{
		Username: "ops@other.example",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops@other.example", verifier.lastEmail)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	verifier := &fakeVerifier{email: "admin@pristol.app", password: "s3cret", uid: "uid-1"}
	auth := newTestAuth(verifier, &fakeTokenService{})

	_, err := auth.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "every failure surfaces the same generic error")
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	verifier := &fakeVerifier{email: "admin@pristol.app", password: "s3cret", uid: "uid-1"}
	auth := newTestAuth(verifier, &fakeTokenService{err: errors.New("signing key missing")})

	_, err := auth.Login(context.Background(), &usecase.LoginInput{
		Username: "admin",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
