package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Ashray02/prescription-wizardry/internal/platform/auth"
)

func authedRequest(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestHandlerGet_NotFound(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo()))
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(req, "user-1"), rec)

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandlerUpsert_Success(t *testing.T) {
	e := echo.New()
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	body := `{"full_name":"Jordan Lee","blood_type":"A+"}`
	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(authedRequest(req, "user-1"), rec)

	if err := h.Upsert(c); err != nil {
		t.Fatalf("Upsert handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := repo.byUser["user-1"]; got == nil || got.FullName == nil || *got.FullName != "Jordan Lee" {
		t.Errorf("profile not stored for user-1: %+v", got)
	}
}

func TestHandlerUpsert_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo()))
	req := httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upsert(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 HTTPError, got %v", err)
	}
}
