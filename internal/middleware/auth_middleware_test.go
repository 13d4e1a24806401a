package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/collegehub/internal/app/models"
	"github.com/emre/collegehub/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()

	admin := router.Group("/admin")
	admin.Use(m.JWTAuth())
	admin.Use(m.RoleRequired(string(models.RoleAdmin)))
	admin.GET("/pending-teachers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(ContextRole)})
	})

	open := router.Group("/teachers")
	open.Use(m.JWTAuth())
	open.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmail)})
	})

	return router
}

func mustToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&models.User{
		ID:    1,
		Email: "user@college.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthGate(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
	})
	router := newTestRouter(jwtService)

	adminToken := mustToken(t, jwtService, models.RoleAdmin)
	studentToken := mustToken(t, jwtService, models.RoleStudent)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  -time.Minute,
	})
	expiredToken := mustToken(t, expired, models.RoleAdmin)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "no token", path: "/admin/pending-teachers", header: "", want: http.StatusUnauthorized},
		{name: "header without bearer", path: "/admin/pending-teachers", header: adminToken, want: http.StatusUnauthorized},
		{name: "expired token", path: "/admin/pending-teachers", header: "Bearer " + expiredToken, want: http.StatusUnauthorized},
		{name: "tampered token", path: "/admin/pending-teachers", header: "Bearer " + adminToken + "x", want: http.StatusForbidden},
		{name: "student on admin route", path: "/admin/pending-teachers", header: "Bearer " + studentToken, want: http.StatusForbidden},
		{name: "admin on admin route", path: "/admin/pending-teachers", header: "Bearer " + adminToken, want: http.StatusOK},
		{name: "student on open route", path: "/teachers", header: "Bearer " + studentToken, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.path, tt.header)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d (body %s)", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRoleRequiredWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour}))

	// RoleRequired wired without JWTAuth must deny, not panic.
	router := gin.New()
	router.GET("/broken", m.RoleRequired(string(models.RoleAdmin)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := doRequest(router, "/broken", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
