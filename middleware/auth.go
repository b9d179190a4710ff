// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
)

// Session keys shared by the middleware and controllers.
const (
	SessionIsAdmin = "isAdmin"
	SessionLang    = "lang"
	SessionFlash   = "flash"
)

// IsAdmin reports whether the session carries the admin flag.
func IsAdmin(c *gin.Context) bool {
	isAdmin, ok := sessions.Default(c).Get(SessionIsAdmin).(bool)
	return ok && isAdmin
}

// SetAdmin marks the session as admin. The language choice survives.
func SetAdmin(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set(SessionIsAdmin, true)
	return session.Save()
}

// ClearAdmin drops the admin flag and any pending notice, keeping the
// visitor's language.
func ClearAdmin(c *gin.Context) error {
	session := sessions.Default(c)
	lang := session.Get(SessionLang)
	session.Clear()
	if lang != nil {
		session.Set(SessionLang, lang)
	}
	return session.Save()
}

// AddFlash queues a one-shot notice for the next page render.
func AddFlash(c *gin.Context, msg string) {
	session := sessions.Default(c)
	session.AddFlash(msg, SessionFlash)
	if err := session.Save(); err != nil {
		logger.Error.Printf("AddFlash: failed to save session: %v", err)
	}
}

// Flashes pops queued notices.
func Flashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes(SessionFlash)
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		logger.Error.Printf("Flashes: failed to save session: %v", err)
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
