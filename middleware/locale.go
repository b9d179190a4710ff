// File: middleware/locale.go
package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"ycfl-league/locale"
	"ycfl-league/logger"
)

const langContextKey = "lang"

// Locale resolves the request language from ?lang=, then the session,
// then Accept-Language. An explicit ?lang= is remembered in the session.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		lang, ok := locale.Parse(c.Query("lang"))
		if ok {
			session.Set(SessionLang, string(lang))
			if err := session.Save(); err != nil {
				logger.Error.Printf("Locale Middleware - failed to save session: %v", err)
			}
		} else if stored, isStr := session.Get(SessionLang).(string); isStr {
			lang, ok = locale.Parse(stored)
		}
		if !ok {
			lang = locale.Negotiate(c.GetHeader("Accept-Language"))
		}

		c.Set(langContextKey, lang)
		c.Next()
	}
}

// Lang returns the language chosen by Locale, or the default.
func Lang(c *gin.Context) locale.Lang {
	if v, ok := c.Get(langContextKey); ok {
		if l, ok := v.(locale.Lang); ok {
			return l
		}
	}
	return locale.Default
}

// SetLang stores lang in the session for later requests.
func SetLang(c *gin.Context, lang locale.Lang) error {
	session := sessions.Default(c)
	session.Set(SessionLang, string(lang))
	c.Set(langContextKey, lang)
	return session.Save()
}
