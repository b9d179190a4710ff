// file: controllers/helpers_test.go
package controllers

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"ycfl-league/middleware"
)

// setupTestRouter creates a new Gin engine with sessions, locale resolution
// and minimal HTML templates that echo the values tests assert on.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	router.Use(middleware.Locale())

	tmpDir := t.TempDir()
	require.NoError(t, createDummyTemplates(tmpDir), "Failed to create dummy templates")
	router.SetFuncMap(TemplateFuncs())
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"home.html":             `lang={{.Lang}} dir={{.Dir}} {{range .Cards}}card:{{.Name}}:{{.Overall}}:{{.Photo}};{{end}}{{range .Gallery}}img:{{.ID}};{{end}}`,
		"register.html":         `register {{range $k, $v := .Errors}}err:{{$k}};{{end}}`,
		"register_success.html": `success {{.Card.Name}} overall={{.Card.Overall}} {{range .Card.Stats}}{{.Label}}={{.Value}};{{end}}`,
		"standings.html":        `{{range .Rows}}{{.Rank}}:{{.ID}}:{{.Name}}:{{.GoalDifference}};{{end}}`,
		"admin_login.html":      `login {{with .Error}}error={{.}}{{end}}`,
		"admin.html":            `tab={{.Tab}} pending={{len .Pending}} players={{len .Players}} teams={{len .Teams}} {{range .Flashes}}flash:{{.}};{{end}}`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return sessionCookieFrom(w)
}

func sessionCookieFrom(w *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "testsession" {
			return ck
		}
	}
	return nil
}

// serve runs one request through router, attaching cookie when given.
func serve(router *gin.Engine, req *http.Request, ck *http.Cookie) *httptest.ResponseRecorder {
	if ck != nil {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

// multipartBody builds a form with text fields and an optional file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func getRequest(path string) *http.Request {
	req, _ := http.NewRequest("GET", path, nil)
	return req
}
