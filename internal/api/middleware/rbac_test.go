package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/core/domain"
)

func guardContext(t *testing.T, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, *principal)
	}
	return c, rec, e
}

func TestRoleGuard_Allows(t *testing.T) {
	c, rec, _ := guardContext(t, &domain.Principal{UserID: 1, RoleID: int(domain.RoleManager)})

	called := false
	mw := RoleGuard(domain.RoleManager, domain.RoleEmployee)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleGuard_ForbidsRoleOutsideSet(t *testing.T) {
	c, rec, e := guardContext(t, &domain.Principal{UserID: 1, RoleID: int(domain.RoleEmployee)})

	mw := RoleGuard(domain.RoleManager)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRoleGuard_ForbidsUnknownRole(t *testing.T) {
	c, rec, e := guardContext(t, &domain.Principal{UserID: 1, RoleID: 99})

	mw := RoleGuard(domain.RoleManager, domain.RoleEmployee, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRoleGuard_MissingPrincipal(t *testing.T) {
	c, rec, e := guardContext(t, nil)

	mw := RoleGuard(domain.RoleManager)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoleGuard_EmptySetAllowsAuthenticated(t *testing.T) {
	c, rec, _ := guardContext(t, &domain.Principal{UserID: 1, RoleID: 99})

	called := false
	mw := RoleGuard()
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, code %d", rec.Code)
	}
}
