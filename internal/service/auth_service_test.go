package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Rutuja303/contentforge/internal/transfer"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewAuthService(newFakeUserRepo())

	userID, err := s.Register(context.Background(), &transfer.RegisterRequest{
		Email:    "Dev@Example.com",
		Password: "supersecret",
		Name:     "Dev",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// email is normalized, so login with the lowercase form works
	loginID, err := s.Login(context.Background(), &transfer.LoginRequest{
		Email:    "dev@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginID != userID {
		t.Fatalf("login returned user %d, registered %d", loginID, userID)
	}
}

func TestRegisterValidation(t *testing.T) {
	s := NewAuthService(newFakeUserRepo())

	tests := []struct {
		name string
		req  transfer.RegisterRequest
		want error
	}{
		{"missing email", transfer.RegisterRequest{Password: "supersecret"}, ErrInvalidInput},
		{"invalid email", transfer.RegisterRequest{Email: "nope", Password: "supersecret"}, ErrInvalidInput},
		{"short password", transfer.RegisterRequest{Email: "a@b.c", Password: "short"}, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Register(context.Background(), &tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewAuthService(newFakeUserRepo())

	req := &transfer.RegisterRequest{Email: "dup@example.com", Password: "supersecret"}
	if _, err := s.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := s.Register(context.Background(), req); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email should conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := NewAuthService(newFakeUserRepo())

	if _, err := s.Register(context.Background(), &transfer.RegisterRequest{
		Email: "a@b.c", Password: "supersecret",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := s.Login(context.Background(), &transfer.LoginRequest{
		Email: "a@b.c", Password: "wrongpassword",
	}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := s.Login(context.Background(), &transfer.LoginRequest{
		Email: "ghost@b.c", Password: "supersecret",
	}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown email should look like a bad password, got %v", err)
	}
}
