package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, mw(next)(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": int64(42),
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	c, err := runMiddleware(t, Auth(testSecret), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if got, _ := c.Get("user_id").(int64); got != 42 {
		t.Fatalf("user_id = %v, want 42", c.Get("user_id"))
	}
	if got, _ := c.Get("role").(string); got != "user" {
		t.Fatalf("role = %v, want user", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runMiddleware(t, Auth(testSecret), "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	_, err := runMiddleware(t, Auth(testSecret), "Token abc")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, err := runMiddleware(t, Auth(testSecret), "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, err := runMiddleware(t, Auth(testSecret), "Bearer "+token)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	c, err := runMiddleware(t, OptionalAuth(testSecret), "")
	if err != nil {
		t.Fatalf("anonymous request must pass, got %v", err)
	}
	if c.Get("user_id") != nil {
		t.Fatalf("no claims expected for anonymous request")
	}
}

func TestOptionalAuth_InvalidTokenStillRejected(t *testing.T) {
	_, err := runMiddleware(t, OptionalAuth(testSecret), "Bearer garbage")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %v", err)
	}
}

func TestOptionalAuth_ValidTokenInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": int64(7),
		"role":    "professional_chef",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	c, err := runMiddleware(t, OptionalAuth(testSecret), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if got, _ := c.Get("user_id").(int64); got != 7 {
		t.Fatalf("user_id = %v, want 7", c.Get("user_id"))
	}
}

func TestRBAC(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newCtx := func(role string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		return c, rec
	}

	c, rec := newCtx("admin")
	if err := RBAC("admin")(next)(c); err != nil {
		t.Fatalf("admin must pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newCtx("user")
	if err := RBAC("admin")(next)(c); err != nil {
		t.Fatalf("RBAC writes the response itself: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", rec.Code)
	}

	c, rec = newCtx("")
	_ = RBAC("admin")(next)(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing role, got %d", rec.Code)
	}
}
