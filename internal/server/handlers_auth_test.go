package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsharma/finboard/internal/app"
	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/services/chat"
	"github.com/rsharma/finboard/internal/services/news"
	"github.com/rsharma/finboard/internal/services/portfolio"
	"github.com/rsharma/finboard/internal/services/sentiment"
	"github.com/rsharma/finboard/internal/storage"
)

// newTestServerWithStorage creates a test server backed by an embedded badger
// store and no external clients.
func newTestServerWithStorage(t *testing.T) *Server {
	t.Helper()
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Driver = common.DriverBadger
	cfg.Storage.Path = t.TempDir()

	mgr, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		t.Fatalf("NewStorageManager failed: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	a := &app.App{
		Config:           cfg,
		Logger:           logger,
		Storage:          mgr,
		PortfolioService: portfolio.NewService(mgr, nil, logger),
		SentimentService: sentiment.NewService(nil, logger),
		NewsService:      news.NewService(nil, 10, logger),
		ChatService:      chat.NewService(nil, logger),
	}
	return &Server{app: a, logger: logger}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return bytes.NewBuffer(data)
}

// signupTestUser registers a user via the handler and returns the issued token.
func signupTestUser(t *testing.T, srv *Server, email, name, password string) string {
	t.Helper()
	body := jsonBody(t, map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	srv.handleAuthSignup(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signupTestUser: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	data := resp["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestHandleAuthSignup_Success(t *testing.T) {
	srv := newTestServerWithStorage(t)

	body := jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "secretpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	srv.handleAuthSignup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", resp["status"])
	}
	data := resp["data"].(map[string]interface{})
	if data["token"] == "" {
		t.Error("expected a token in the response")
	}
	user := data["user"].(map[string]interface{})
	if user["email"] != "alice@example.com" {
		t.Errorf("expected email 'alice@example.com', got %v", user["email"])
	}
	if user["role"] != "user" {
		t.Errorf("expected role 'user', got %v", user["role"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must not appear in responses")
	}
}

func TestHandleAuthSignup_InvalidEmail(t *testing.T) {
	srv := newTestServerWithStorage(t)

	body := jsonBody(t, map[string]string{
		"email":    "not-an-email",
		"password": "secretpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	srv.handleAuthSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAuthSignup_ShortPassword(t *testing.T) {
	srv := newTestServerWithStorage(t)

	body := jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"password": "short",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	srv.handleAuthSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAuthSignup_DuplicateEmail(t *testing.T) {
	srv := newTestServerWithStorage(t)
	signupTestUser(t, srv, "alice@example.com", "Alice", "secretpass")

	body := jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"password": "otherpass1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()
	srv.handleAuthSignup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate, got %d", rec.Code)
	}
}

func TestHandleAuthLogin_Success(t *testing.T) {
	srv := newTestServerWithStorage(t)
	signupTestUser(t, srv, "alice@example.com", "Alice", "secretpass")

	body := jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"password": "secretpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()
	srv.handleAuthLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	data := resp["data"].(map[string]interface{})
	if data["token"] == "" {
		t.Error("expected a token in the response")
	}
}

func TestHandleAuthLogin_WrongPassword(t *testing.T) {
	srv := newTestServerWithStorage(t)
	signupTestUser(t, srv, "alice@example.com", "Alice", "secretpass")

	body := jsonBody(t, map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()
	srv.handleAuthLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleAuthLogin_UnknownEmail(t *testing.T) {
	srv := newTestServerWithStorage(t)

	body := jsonBody(t, map[string]string{
		"email":    "nobody@example.com",
		"password": "secretpass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()
	srv.handleAuthLogin(rec, req)

	// Unknown email and wrong password must be indistinguishable.
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleAuthValidate_Success(t *testing.T) {
	srv := newTestServerWithStorage(t)
	token := signupTestUser(t, srv, "alice@example.com", "Alice", "secretpass")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.handleAuthValidate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAuthValidate_BadToken(t *testing.T) {
	srv := newTestServerWithStorage(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	srv.handleAuthValidate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleAuthValidate_MissingHeader(t *testing.T) {
	srv := newTestServerWithStorage(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	rec := httptest.NewRecorder()
	srv.handleAuthValidate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
