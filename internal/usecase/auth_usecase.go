package usecase

import "context"

// LoginInput carries the admin login form fields. Username may be a bare
// account name; the configured email domain is appended when no domain is
// supplied.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued session tokens.
type LoginOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// AuthUsecase handles admin authentication.
type AuthUsecase interface {
	// Login verifies the credentials against the external auth service and
	// issues session tokens. All failures surface as ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
