package healthhttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, key []byte, claims map[string]any) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	s, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return s
}

func TestJWTAuthenticator_Authenticate(t *testing.T) {
	key := []byte("secret")
	auth := NewJWTAuthenticator(JWTConfig{Issuer: "ops", Audience: "health"}, NewStaticKeyProvider(key))

	valid := signToken(t, key, map[string]any{"iss": "ops", "aud": "health", "sub": "prober"})
	expired := signToken(t, key, map[string]any{
		"iss": "ops", "aud": "health",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongIssuer := signToken(t, key, map[string]any{"iss": "other", "aud": "health"})
	wrongAudience := signToken(t, key, map[string]any{"iss": "ops", "aud": []any{"billing"}})
	wrongKey := signToken(t, []byte("other"), map[string]any{"iss": "ops", "aud": "health"})

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"valid", "Bearer " + valid, nil},
		{"missing header", "", ErrMissingCredentials},
		{"wrong scheme", "Basic abc123", ErrMissingCredentials},
		{"malformed", "Bearer not-a-token", ErrTokenMalformed},
		{"expired", "Bearer " + expired, ErrTokenExpired},
		{"wrong issuer", "Bearer " + wrongIssuer, ErrInvalidCredentials},
		{"wrong audience", "Bearer " + wrongAudience, ErrInvalidCredentials},
		{"wrong key", "Bearer " + wrongKey, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			id, err := auth.Authenticate(context.Background(), header)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authenticate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && id.Subject != "prober" {
				t.Errorf("Subject = %q, want prober", id.Subject)
			}
		})
	}
}

func TestJWTAuthenticator_RejectsNonHMAC(t *testing.T) {
	auth := NewJWTAuthenticator(JWTConfig{}, NewStaticKeyProvider([]byte("secret")))

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	header := http.Header{"Authorization": {"Bearer " + token}}
	if _, err := auth.Authenticate(context.Background(), header); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestJWTAuthenticator_CustomHeader(t *testing.T) {
	key := []byte("secret")
	auth := NewJWTAuthenticator(JWTConfig{HeaderName: "X-Health-Token", TokenPrefix: "Token "}, NewStaticKeyProvider(key))

	header := http.Header{}
	header.Set("X-Health-Token", "Token "+signToken(t, key, map[string]any{"sub": "svc"}))

	id, err := auth.Authenticate(context.Background(), header)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if id.Subject != "svc" {
		t.Errorf("Subject = %q, want svc", id.Subject)
	}
}

func TestRequireAuth_StoresIdentity(t *testing.T) {
	key := []byte("secret")
	auth := NewJWTAuthenticator(JWTConfig{}, NewStaticKeyProvider(key))

	var got *Identity
	h := RequireAuth(auth, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/ready/details", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, map[string]any{"sub": "ops-team", "role": "admin"}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.Subject != "ops-team" {
		t.Fatalf("identity = %+v, want subject ops-team", got)
	}
	if got.Claims["role"] != "admin" {
		t.Errorf("Claims[role] = %v, want admin", got.Claims["role"])
	}
}

func TestIdentityFromContext_Empty(t *testing.T) {
	if id := IdentityFromContext(context.Background()); id != nil {
		t.Errorf("IdentityFromContext() = %+v, want nil", id)
	}
}
