// file: controllers/auth_controller_test.go
package controllers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"ycfl-league/middleware"
)

const testAdminPassword = "yemenistudentsunion"

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ac, err := NewAuthController(testAdminPassword)
	require.NoError(t, err)

	router := setupTestRouter(t)
	router.GET("/admin/login", ac.LoginPage)
	router.POST("/admin/login", ac.Login)
	router.GET("/admin/logout", ac.Logout)
	router.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "panel")
	})
	return router
}

func loginRequest(password string) *http.Request {
	form := url.Values{"password": {password}}
	req, _ := http.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestNewAuthController_RejectsEmptyPassword(t *testing.T) {
	_, err := NewAuthController("")
	assert.Error(t, err)
}

func TestComparePasswords(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, ComparePasswords(string(hashed), "secret"))
	assert.False(t, ComparePasswords(string(hashed), "secre"))
	assert.False(t, ComparePasswords(string(hashed), "secret "))
}

func TestLoginPage_Renders(t *testing.T) {
	router := setupAuthRouter(t)
	w := serve(router, getRequest("/admin/login"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login")
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := serve(router, loginRequest("wrong"), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error=كلمة المرور غير صحيحة")

	zh := loginRequest("wrong")
	zh.Header.Set("Accept-Language", "zh-CN")
	w = serve(router, zh, nil)
	assert.Contains(t, w.Body.String(), "error=密码错误")
}

func TestLogin_PrefixOfPasswordIsRejected(t *testing.T) {
	router := setupAuthRouter(t)
	w := serve(router, loginRequest(testAdminPassword[:10]), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_SuccessGrantsAdminUntilLogout(t *testing.T) {
	router := setupAuthRouter(t)

	w := serve(router, loginRequest(testAdminPassword), nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	ck := sessionCookieFrom(w)
	require.NotNil(t, ck)

	w = serve(router, getRequest("/admin"), ck)
	assert.Equal(t, http.StatusOK, w.Code)

	// already signed in: login page bounces to the panel
	w = serve(router, getRequest("/admin/login"), ck)
	assert.Equal(t, http.StatusFound, w.Code)

	w = serve(router, getRequest("/admin/logout"), ck)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	loggedOut := sessionCookieFrom(w)
	require.NotNil(t, loggedOut)

	w = serve(router, getRequest("/admin"), loggedOut)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}
