package usecases_port

import "context"

// AuthUseCase issues and checks admin tokens.
type AuthUseCase interface {
	// Login returns a signed token for valid credentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Validate parses a bearer token and returns the subject username.
	Validate(token string) (string, error)
}
