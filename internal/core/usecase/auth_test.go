package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	user *domain.User
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.user != nil && f.user.Username == username {
		return f.user, nil
	}
	return nil, domain.ErrNotFound
}

func TestAuthLoginAndValidate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	users := &fakeUsers{user: &domain.User{ID: "u1", Username: "admin", PasswordHash: string(hash)}}
	uc := NewAuthUseCase(users, []byte("test-signing-key"), time.Hour)

	token, err := uc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	subject, err := uc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if subject != "admin" {
		t.Fatalf("subject = %q, want %q", subject, "admin")
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	users := &fakeUsers{user: &domain.User{ID: "u1", Username: "admin", PasswordHash: string(hash)}}
	uc := NewAuthUseCase(users, []byte("test-signing-key"), time.Hour)

	if _, err := uc.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := uc.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthValidateRejectsForeignToken(t *testing.T) {
	uc := NewAuthUseCase(&fakeUsers{}, []byte("key-a"), time.Hour)
	other := NewAuthUseCase(&fakeUsers{user: &domain.User{Username: "admin", PasswordHash: mustHash(t, "pw")}}, []byte("key-b"), time.Hour)

	token, err := other.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := uc.Validate(token); err == nil {
		t.Fatal("token signed with a different key must not validate")
	}
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}
