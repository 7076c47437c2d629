package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong username or password; the
// two cases are indistinguishable to the caller on purpose.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUseCase checks admin credentials against the users table and issues
// HS256 tokens for the admin surface.
type AuthUseCase struct {
	users    port.UserStoragePort
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthUseCase(users port.UserStoragePort, secret []byte, tokenTTL time.Duration) *AuthUseCase {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthUseCase{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if uc.users == nil {
		return "", domain.ErrStoreUnavailable
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		logger.Error("User lookup failed", err, port.Fields{"username": username})
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
	})

	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("Admin logged in", port.Fields{"username": username})
	return signed, nil
}

func (uc *AuthUseCase) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
