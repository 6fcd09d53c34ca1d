package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pristol/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifierConfig(endpoint string) *config.Config {
	return &config.Config{
		Firebase: &config.FirebaseConfig{
			WebAPIKey:    "test-api-key",
			AuthEndpoint: endpoint,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseVerifier_VerifyPassword_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@pristol.app", body["email"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId": "uid-123",
			"email":   "admin@pristol.app",
			"idToken": "opaque",
		})
	}))
	defer server.Close()

	verifier, err := NewFirebaseVerifier(newVerifierConfig(server.URL), discardLogger())
	require.NoError(t, err)

	uid, err := verifier.VerifyPassword(context.Background(), "admin@pristol.app", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", uid)
}

func TestFirebaseVerifier_VerifyPassword_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	defer server.Close()

	verifier, err := NewFirebaseVerifier(newVerifierConfig(server.URL), discardLogger())
	require.NoError(t, err)

	_, err = verifier.VerifyPassword(context.Background(), "admin@pristol.app", "wrong")
	assert.Error(t, err)
}

func TestFirebaseVerifier_RequiresAPIKey(t *testing.T) {
	_, err := NewFirebaseVerifier(&config.Config{}, discardLogger())
	assert.Error(t, err)
}
