package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	accounts map[string]*Account
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]*Account{}}
}

func (m *memoryRepository) Create(ctx context.Context, account *Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	m.accounts[account.Email] = account
	return nil
}

func (m *memoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	account, ok := m.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func testService() *Service {
	return NewService(Config{SecretKey: "test-secret"}, newMemoryRepository())
}

func TestRegisterLoginValidateRoundTrip(t *testing.T) {
	s := testService()
	ctx := context.Background()

	account, err := s.Register(ctx, "dev@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.PasswordHash == "hunter2hunter2" {
		t.Error("password must be stored hashed")
	}

	token, err := s.Login(ctx, "dev@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("claims email = %s", claims.Email)
	}
	if claims.AccountID != account.ID {
		t.Errorf("claims account id = %s, want %s", claims.AccountID, account.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := testService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "dev@example.com", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := s.Register(ctx, "dev@example.com", "password456"); !errors.Is(err, ErrAccountExists) {
		t.Errorf("err = %v, want ErrAccountExists", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s := testService()
	ctx := context.Background()

	s.Register(ctx, "dev@example.com", "correct-password")

	if _, err := s.Login(ctx, "dev@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown account err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken_RejectsGarbageAndWrongKey(t *testing.T) {
	s := testService()

	if _, err := s.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}

	other := NewService(Config{SecretKey: "different-secret"}, newMemoryRepository())

	ctx := context.Background()
	s.Register(ctx, "dev@example.com", "password123")
	token, err := s.Login(ctx, "dev@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("cross-key token err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	repo := newMemoryRepository()
	s := NewService(Config{SecretKey: "test-secret", TokenDuration: -time.Hour}, repo)
	ctx := context.Background()

	s.Register(ctx, "dev@example.com", "password123")
	token, err := s.Login(ctx, "dev@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token err = %v, want ErrInvalidToken", err)
	}
}

func TestMiddleware(t *testing.T) {
	s := testService()
	ctx := context.Background()

	s.Register(ctx, "dev@example.com", "password123")
	token, err := s.Login(ctx, "dev@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	var gotClaims *Claims
	handler := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + token, http.StatusUnauthorized},
		{"invalid token", "Bearer bogus", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if gotClaims == nil || gotClaims.Email != "dev@example.com" {
		t.Errorf("claims not propagated: %+v", gotClaims)
	}
}
