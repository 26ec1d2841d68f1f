package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkhipovds/leadbox/internal/config"
	"github.com/arkhipovds/leadbox/internal/domain/model"
	"github.com/arkhipovds/leadbox/internal/server/http/handlers"
	testhelpers "github.com/arkhipovds/leadbox/internal/test"
)

func newTestEngine(facade testhelpers.CRMFacadeStub, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if cfg == nil {
		cfg = &config.Config{}
	}
	return Setup(facade, testhelpers.HealthCheckerStub{}, logger, cfg)
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.CRMFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{},
		LeadFacadeStub: testhelpers.LeadFacadeStub{
			ListFn: func(context.Context, int64) ([]model.Lead, error) {
				return []model.Lead{{ID: 1, OwnerID: 1, FirstName: "Anna", CreatedAt: time.Unix(0, 0)}}, nil
			},
		},
	}
	engine := newTestEngine(facade, nil)

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for leads, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for profile, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

func TestSetupProtectsLeadRoutes(t *testing.T) {
	engine := newTestEngine(testhelpers.CRMFacadeStub{}, nil)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodPost, "/api/leads"},
		{http.MethodGet, "/api/leads"},
		{http.MethodGet, "/api/leads/1"},
		{http.MethodPut, "/api/leads/1"},
		{http.MethodDelete, "/api/leads/1"},
	}

	for _, tt := range paths {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s without token, got %d", tt.method, tt.path, resp.Code)
		}
	}
}

func TestSetupCORSPreflight(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.example.com"}}
	engine := newTestEngine(testhelpers.CRMFacadeStub{}, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("unexpected allow origin header %q", got)
	}
}

var _ handlers.CRMFacade = (*testhelpers.CRMFacadeStub)(nil)
