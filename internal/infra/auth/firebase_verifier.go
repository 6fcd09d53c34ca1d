package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pristol/config"
	"pristol/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultAuthEndpoint = "https://identitytoolkit.googleapis.com/v1"

// firebaseVerifier verifies email/password credentials against the Firebase
// Identity Toolkit REST API. Password verification is not exposed by the
// Admin SDK, so this goes through the same endpoint the storefront client
// uses, authorized by the project's web API key.
type firebaseVerifier struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(cfg *config.Config, logger *slog.Logger) (service.CredentialVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.WebAPIKey == "" {
		return nil, errors.New("firebase web API key must be provided")
	}

	endpoint := cfg.Firebase.AuthEndpoint
	if endpoint == "" {
		endpoint = defaultAuthEndpoint
	}

	return &firebaseVerifier{
		endpoint: endpoint,
		apiKey:   cfg.Firebase.WebAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

// VerifyPassword calls accounts:signInWithPassword and returns the account
// uid. The response body of a failed attempt is deliberately not inspected;
// every rejection looks the same to the caller.
func (v *firebaseVerifier) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	url := v.endpoint + "/accounts:signInWithPassword?key=" + v.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "sign-in request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Debug("sign-in rejected", slog.Int("status", resp.StatusCode))

		return "", errors.Errorf("sign-in rejected with status %d", resp.StatusCode)
	}

	var signIn signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&signIn); err != nil {
		return "", errors.Wrap(err, "decode sign-in response")
	}

	if signIn.LocalID == "" {
		return "", errors.New("sign-in response missing uid")
	}

	return signIn.LocalID, nil
}
