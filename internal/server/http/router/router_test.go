package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mvoronin/userhub/internal/config"
	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/server/http/handlers"
	pkgAuth "github.com/mvoronin/userhub/internal/pkg/auth"
	testhelpers "github.com/mvoronin/userhub/internal/test"
)

var _ handlers.AccountFacade = testhelpers.AccountFacadeStub{}

func newTestRouter(facade handlers.AccountFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AllowedOrigin: "http://localhost:5173"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, cfg, logger)
}

func TestLoginRouteIsOpen(t *testing.T) {
	engine := newTestRouter(testhelpers.AccountFacadeStub{})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@x.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for open login route, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterRouteIsOpen(t *testing.T) {
	engine := newTestRouter(testhelpers.AccountFacadeStub{})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/user",
		strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@x.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for open registration route, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	engine := newTestRouter(testhelpers.AccountFacadeStub{})

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/user"},
		{http.MethodGet, "/user/1"},
		{http.MethodPut, "/user/1"},
		{http.MethodDelete, "/user/1"},
	}
	for _, route := range routes {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(route.method, route.target, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", route.method, route.target, resp.Code)
		}
	}
}

func TestProtectedRoutesRejectInvalidToken(t *testing.T) {
	facade := testhelpers.AccountFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(string) (model.Identity, error) {
				return model.Identity{}, pkgAuth.ErrInvalidToken
			},
		},
	}
	engine := newTestRouter(facade)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer stale")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}
}

func TestProtectedRouteAdmitsValidToken(t *testing.T) {
	facade := testhelpers.AccountFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			ParseFn: func(string) (model.Identity, error) {
				return model.Identity{UserID: 1, Role: model.RoleAdmin}, nil
			},
		},
	}
	engine := newTestRouter(facade)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer valid")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	engine := newTestRouter(testhelpers.AccountFacadeStub{})

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", resp.Code)
	}
}
