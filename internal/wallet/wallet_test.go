package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
)

func newTestClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	return NewHTTP(config.WalletConfig{
		APIURL:      url,
		Token:       "test-token",
		TimeoutSecs: 2,
	})
}

func TestDemoAwardAndBalance(t *testing.T) {
	w := NewDemo(250)

	balance, err := w.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if balance != 250 {
		t.Errorf("starting balance = %d, want 250", balance)
	}

	if err := w.Award(context.Background(), 12, "snake score 24"); err != nil {
		t.Fatalf("Award() failed: %v", err)
	}

	balance, _ = w.Balance(context.Background())
	if balance != 262 {
		t.Errorf("balance after award = %d, want 262", balance)
	}
}

func TestDemoIgnoresNonPositiveAward(t *testing.T) {
	w := NewDemo(100)

	if err := w.Award(context.Background(), 0, "noop"); err != nil {
		t.Fatalf("Award(0) failed: %v", err)
	}
	if err := w.Award(context.Background(), -5, "noop"); err != nil {
		t.Fatalf("Award(-5) failed: %v", err)
	}

	balance, _ := w.Balance(context.Background())
	if balance != 100 {
		t.Errorf("balance = %d, want 100", balance)
	}
}

func TestNewPicksImplementation(t *testing.T) {
	if _, ok := New(config.WalletConfig{Demo: true, DemoBalance: 250}).(*DemoWallet); !ok {
		t.Error("demo config did not produce a demo wallet")
	}
	if _, ok := New(config.WalletConfig{Demo: false}).(*DemoWallet); !ok {
		t.Error("missing API URL did not fall back to demo wallet")
	}
	if _, ok := New(config.WalletConfig{Demo: false, APIURL: "http://localhost:1"}).(*HTTPClient); !ok {
		t.Error("live config did not produce an HTTP client")
	}
}

func TestHTTPAwardSendsRequest(t *testing.T) {
	var got awardRequest
	var auth, path, method string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("cannot decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.Award(context.Background(), 12, "snake score 24"); err != nil {
		t.Fatalf("Award() failed: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("method = %s, want POST", method)
	}
	if path != "/api/arcade/award" {
		t.Errorf("path = %s", path)
	}
	if auth != "Bearer test-token" {
		t.Errorf("auth header = %q", auth)
	}
	if got.Points != 12 || got.Reason != "snake score 24" {
		t.Errorf("body = %+v", got)
	}
}

func TestHTTPAwardUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	err := c.Award(context.Background(), 5, "mole score 50")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Award() error = %v, want ErrUnauthorized", err)
	}
}

func TestHTTPAwardServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	err := c.Award(context.Background(), 5, "mole score 50")
	if err == nil {
		t.Fatal("Award() succeeded against a failing server")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Errorf("server error mapped to ErrUnauthorized: %v", err)
	}
}

func TestHTTPAwardZeroPointsSkipsCall(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.Award(context.Background(), 0, "noop"); err != nil {
		t.Fatalf("Award(0) failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("zero-point award made %d HTTP calls", calls)
	}
}

func TestHTTPBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/arcade/balance" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(balanceResponse{Balance: 314})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	balance, err := c.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if balance != 314 {
		t.Errorf("Balance() = %d, want 314", balance)
	}
}

func TestHTTPBalanceUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.Balance(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Balance() error = %v, want ErrUnauthorized", err)
	}
}

func TestHTTPBaseURLTrailingSlash(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(balanceResponse{Balance: 1})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL+"/")
	if _, err := c.Balance(context.Background()); err != nil {
		t.Fatalf("Balance() failed: %v", err)
	}
	if path != "/api/arcade/balance" {
		t.Errorf("path = %q, trailing slash not trimmed", path)
	}
}

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("cannot sign token: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	exp, ok := tokenExpiry(mintToken(t, jwt.MapClaims{"exp": past.Unix()}))
	if !ok {
		t.Fatal("expiry claim not found in expired token")
	}
	if !exp.Before(time.Now()) {
		t.Errorf("expiry %v not in the past", exp)
	}

	future := time.Now().Add(time.Hour)
	exp, ok = tokenExpiry(mintToken(t, jwt.MapClaims{"exp": future.Unix()}))
	if !ok {
		t.Fatal("expiry claim not found in fresh token")
	}
	if exp.Before(time.Now()) {
		t.Errorf("expiry %v unexpectedly in the past", exp)
	}

	if _, ok := tokenExpiry("opaque-token"); ok {
		t.Error("opaque token reported an expiry")
	}
	if _, ok := tokenExpiry(mintToken(t, jwt.MapClaims{"sub": "player"})); ok {
		t.Error("token without exp claim reported an expiry")
	}
}
