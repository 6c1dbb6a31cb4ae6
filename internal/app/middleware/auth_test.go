package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/pkg/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func setupAuth(t *testing.T) (*AuthService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	authSvc := &AuthService{
		JWT:     auth.NewJWTService("test-secret"),
		Session: auth.NewSessionServiceWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})),
	}

	router := gin.New()
	router.GET("/protected", AuthMiddleware(authSvc), func(c *gin.Context) {
		actor := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "is_admin": actor.IsAdmin})
	})
	router.GET("/open", OptionalAuthMiddleware(authSvc), func(c *gin.Context) {
		actor := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"anonymous": actor.IsAnonymous()})
	})
	return authSvc, router
}

func TestAuthMiddlewareRejectsAnonymous(t *testing.T) {
	_, router := setupAuth(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	authSvc, router := setupAuth(t)

	token, err := authSvc.JWT.Generate(7, "a@x.com", true)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	_, router := setupAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareSessionCookie(t *testing.T) {
	authSvc, router := setupAuth(t)

	err := authSvc.Session.Create(context.Background(), "sid-1", auth.SessionData{
		UserID: 7, Email: "a@x.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sid-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	_, router := setupAuth(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status %d, want 200", w.Code)
	}
}
