package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/belajar-arab/backend/internal/auth"
)

func TestIssueAndParseToken(t *testing.T) {
	svc := auth.NewService("test-secret", 24*time.Hour)
	teacher := auth.Teacher{ID: "1", Username: "guru", Name: "Guru Bahasa Arab"}

	tok, err := svc.IssueToken(teacher)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "guru" || claims.Role != "teacher" || claims.Subject != "1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 24*time.Hour {
		t.Fatalf("want 24h lifetime, got %s", lifetime)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := auth.NewService("secret-a", time.Hour).IssueToken(auth.Teacher{ID: "1", Username: "guru"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.NewService("secret-b", time.Hour).Parse(tok); err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
}

func postLogin(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestLoginSuccess(t *testing.T) {
	svc := auth.NewService("test-secret", 24*time.Hour)
	h := auth.LoginHandler(auth.DefaultStore(), svc)

	rec := postLogin(t, h, `{"username":"guru","password":"guru123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Teacher struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"teacher"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Teacher.Username != "guru" || resp.Teacher.Name != "Guru Bahasa Arab" {
		t.Fatalf("unexpected teacher: %+v", resp.Teacher)
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}

	claims, err := svc.Parse(resp.Token)
	if err != nil {
		t.Fatalf("returned token does not verify: %v", err)
	}
	if claims.Role != "teacher" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

// Unknown user and wrong password must be indistinguishable from the
// outside.
func TestLoginUniformRejection(t *testing.T) {
	h := auth.LoginHandler(auth.DefaultStore(), auth.NewService("test-secret", time.Hour))

	unknown := postLogin(t, h, `{"username":"nobody","password":"guru123"}`)
	wrongPass := postLogin(t, h, `{"username":"guru","password":"wrong"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("status: %d vs %d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("rejection bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestLoginBadBodyAndMethod(t *testing.T) {
	h := auth.LoginHandler(auth.DefaultStore(), auth.NewService("test-secret", time.Hour))

	rec := postLogin(t, h, `{not json`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("bad body: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("bad body: %s", rec.Body.String())
	}

	req := httptest.NewRequest("GET", "/api/auth", nil)
	get := httptest.NewRecorder()
	h(get, req)
	if get.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET: status %d", get.Code)
	}
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFromContext(r.Context())
		if claims == nil || claims.Username != "guru" {
			t.Fatalf("claims missing from context: %+v", claims)
		}
		w.WriteHeader(204)
	})
	h := auth.Middleware(svc)(next)

	req := httptest.NewRequest("POST", "/api/database/students", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d", rec.Code)
	}

	tok, err := svc.IssueToken(auth.Teacher{ID: "1", Username: "guru"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req = httptest.NewRequest("POST", "/api/database/students", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 204 {
		t.Fatalf("valid token: status %d, body %s", rec.Code, rec.Body.String())
	}
}
