package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/emre/collegehub/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test-issuer",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Test User",
		Email: "user@college.com",
		Role:  models.RoleTeacher,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}

	if claims.UserID != 7 || claims.Email != "user@college.com" || claims.Role != "teacher" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "test-issuer" {
		t.Fatalf("unexpected issuer: %s", claims.Issuer)
	}
}

func TestExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	_, err = service.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestTamperedToken(t *testing.T) {
	service := newTestService(time.Hour)

	token, err := service.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:   "other-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test-issuer",
	})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for wrong secret, got %v", err)
	}

	if _, err := service.ValidateToken(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for tampered signature, got %v", err)
	}

	if _, err := service.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for malformed input, got %v", err)
	}
}

func TestMissingToken(t *testing.T) {
	service := newTestService(time.Hour)

	if _, err := service.ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "no bearer prefix", header: "abc.def.ghi", wantErr: true},
		{name: "bearer without token", header: "Bearer ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingToken) {
					t.Fatalf("expected missing token error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
