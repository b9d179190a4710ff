// Package controllers controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"ycfl-league/logger"
	"ycfl-league/middleware"
)

// AuthController guards the admin area with the league's single shared
// password. It is a convenience gate for one organiser, not user accounts.
type AuthController struct {
	passwordHash string
}

// NewAuthController hashes the shared admin password once at start-up.
func NewAuthController(adminPassword string) (*AuthController, error) {
	if adminPassword == "" {
		return nil, errors.New("admin password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthController{passwordHash: string(hash)}, nil
}

// ComparePasswords checks if the given password matches the hashed password
func ComparePasswords(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

// LoginPage renders the password form, or skips it for a signed-in admin.
func (ac *AuthController) LoginPage(c *gin.Context) {
	if middleware.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", pageData(c, nil))
}

// Login checks the submitted password and marks the session as admin.
func (ac *AuthController) Login(c *gin.Context) {
	password := c.PostForm("password")

	if !ComparePasswords(ac.passwordHash, password) {
		logger.Warn.Println("Login: wrong admin password")
		c.HTML(http.StatusUnauthorized, "admin_login.html", pageData(c, gin.H{
			"Error": middleware.Lang(c).Strings().WrongPassword,
		}))
		return
	}

	if err := middleware.SetAdmin(c); err != nil {
		logger.Error.Printf("Login: failed to save session: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", pageData(c, gin.H{
			"Error": "Internal error, please try again.",
		}))
		return
	}

	logger.Info.Println("Login: admin signed in")
	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the admin flag and returns to the home page.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := middleware.ClearAdmin(c); err != nil {
		logger.Error.Printf("Logout: Error saving session during logout: %v", err)
	} else {
		logger.Info.Println("Logout: admin session cleared")
	}
	c.Redirect(http.StatusFound, "/")
}
