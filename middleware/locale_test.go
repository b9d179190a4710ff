// file: middleware/locale_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupLocaleTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))
	router.Use(Locale())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, string(Lang(c)))
	})
	router.GET("/flash", func(c *gin.Context) {
		AddFlash(c, "notice")
		c.Status(http.StatusNoContent)
	})
	router.GET("/read-flash", func(c *gin.Context) {
		c.JSON(http.StatusOK, Flashes(c))
	})
	return router
}

func TestLocale_DefaultsToArabic(t *testing.T) {
	router := setupLocaleTestRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "ar", w.Body.String())
}

func TestLocale_AcceptLanguage(t *testing.T) {
	router := setupLocaleTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "zh", w.Body.String())
}

func TestLocale_QueryWinsAndIsRemembered(t *testing.T) {
	router := setupLocaleTestRouter()
	ck := sessionCookie(t, router, "/?lang=zh")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ar")
	req.AddCookie(ck)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "zh", w.Body.String(), "session choice beats Accept-Language")
}

func TestLocale_UnknownQueryIgnored(t *testing.T) {
	router := setupLocaleTestRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
	assert.Equal(t, "ar", w.Body.String())
}

func TestFlashes_OneShot(t *testing.T) {
	router := setupLocaleTestRouter()
	ck := sessionCookie(t, router, "/flash")

	req := httptest.NewRequest(http.MethodGet, "/read-flash", nil)
	req.AddCookie(ck)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `["notice"]`, w.Body.String())

	var next *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			next = c
		}
	}
	req = httptest.NewRequest(http.MethodGet, "/read-flash", nil)
	if next != nil {
		req.AddCookie(next)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "null", w.Body.String())
}
