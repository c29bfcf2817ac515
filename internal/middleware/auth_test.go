package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistro-systems/table-reserve/internal/models"
	"github.com/bistro-systems/table-reserve/internal/token"
)

func newEngine(svc *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identify(svc))

	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": CallerEmail(c),
			"role":  CallerRole(c),
		})
	})
	r.GET("/private", RequireUser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func issue(t *testing.T, svc *token.Service, email, role string) string {
	t.Helper()
	signed, err := svc.Issue(&models.User{Name: "T", Email: email, Role: role})
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, path string, decorate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if decorate != nil {
		decorate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentifyMissingTokenIsAnonymous(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	r := newEngine(svc)

	w := get(r, "/whoami", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":""`)
}

func TestIdentifyInvalidTokenIsAnonymousNotError(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	r := newEngine(svc)

	forged := issue(t, token.NewService("other", time.Hour), "mallory@example.com", models.RoleAdmin)

	w := get(r, "/whoami", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+forged)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":""`)

	w = get(r, "/whoami", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":""`)
}

func TestIdentifyCookieThenBearer(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	r := newEngine(svc)

	cookieToken := issue(t, svc, "cookie@example.com", models.RoleUser)
	headerToken := issue(t, svc, "header@example.com", models.RoleUser)

	// Cookie wins when both are present.
	w := get(r, "/whoami", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookieToken})
		req.Header.Set("Authorization", "Bearer "+headerToken)
	})
	assert.Contains(t, w.Body.String(), "cookie@example.com")

	// Header alone works as fallback.
	w = get(r, "/whoami", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+headerToken)
	})
	assert.Contains(t, w.Body.String(), "header@example.com")
}

func TestRequireUser(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	r := newEngine(svc)

	w := get(r, "/private", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	signed := issue(t, svc, "alice@example.com", models.RoleUser)
	w = get(r, "/private", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signed)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	svc := token.NewService("secret", time.Hour)
	r := newEngine(svc)

	w := get(r, "/admin", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := issue(t, svc, "alice@example.com", models.RoleUser)
	w = get(r, "/admin", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+userToken)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := issue(t, svc, "root@example.com", models.RoleAdmin)
	w = get(r, "/admin", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+adminToken)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
