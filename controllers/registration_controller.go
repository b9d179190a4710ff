// Package controllers file: controllers/registration_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
	"ycfl-league/middleware"
	"ycfl-league/models"
	"ycfl-league/services"
)

// RegistrationController handles player sign-ups from the page and the API.
type RegistrationController struct {
	League         services.LeagueServiceInterface
	MaxUploadBytes int64
}

func NewRegistrationController(league services.LeagueServiceInterface, maxUploadBytes int64) *RegistrationController {
	return &RegistrationController{League: league, MaxUploadBytes: maxUploadBytes}
}

type registrationForm struct {
	Name     string `form:"name" binding:"required,max=80"`
	Phone    string `form:"phone" binding:"required,max=32"`
	WechatID string `form:"wechatId" binding:"required,max=64"`
	Stats    models.PlayerStats
}

type registrationRequest struct {
	Name     string             `json:"name" binding:"required,max=80"`
	Phone    string             `json:"phone" binding:"required,max=32"`
	WechatID string             `json:"wechatId" binding:"required,max=64"`
	Stats    models.PlayerStats `json:"stats"`
	Photo    string             `json:"photo" binding:"omitempty,url|datauri"`
}

// RegisterPage renders the empty sign-up form.
func (rc *RegistrationController) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{
		"Form": registrationForm{Stats: models.DefaultStats()},
	}))
}

// SubmitRegistration handles the multipart sign-up form.
func (rc *RegistrationController) SubmitRegistration(c *gin.Context) {
	limitBody(c, rc.MaxUploadBytes)

	var form registrationForm
	if err := c.ShouldBind(&form); err != nil {
		if isTooLarge(err) {
			logger.Warn.Printf("SubmitRegistration: upload over %d bytes", rc.MaxUploadBytes)
			c.HTML(http.StatusRequestEntityTooLarge, "register.html", pageData(c, gin.H{
				"Form":   form,
				"Errors": map[string]string{"photo": middleware.Lang(c).Strings().UploadTooLarge},
			}))
			return
		}
		logger.Warn.Printf("SubmitRegistration: invalid form: %v", err)
		c.HTML(http.StatusBadRequest, "register.html", pageData(c, gin.H{
			"Form":   form,
			"Errors": ParseError(err),
		}))
		return
	}

	photo := ""
	if fh, err := c.FormFile("photo"); err == nil {
		if photo, err = services.FileHeaderToDataURI(fh); err != nil {
			logger.Warn.Printf("SubmitRegistration: photo rejected: %v", err)
			c.HTML(statusForError(err), "register.html", pageData(c, gin.H{
				"Form":   form,
				"Errors": map[string]string{"photo": err.Error()},
			}))
			return
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		logger.Warn.Printf("SubmitRegistration: unreadable upload: %v", err)
		c.HTML(http.StatusBadRequest, "register.html", pageData(c, gin.H{
			"Form":   form,
			"Errors": map[string]string{"photo": err.Error()},
		}))
		return
	}

	player, err := rc.League.SubmitRegistration(models.Registration{
		Name: form.Name, Phone: form.Phone, WechatID: form.WechatID, Stats: form.Stats, Photo: photo,
	})
	if err != nil {
		logger.Error.Printf("SubmitRegistration: %v", err)
		c.HTML(http.StatusInternalServerError, "register.html", pageData(c, gin.H{"Form": form}))
		return
	}

	lang := middleware.Lang(c)
	c.HTML(http.StatusCreated, "register_success.html", pageData(c, gin.H{
		"Card": newPlayerCard(player, lang, nil),
	}))
}

// APIRegister is the JSON twin of SubmitRegistration.
func (rc *RegistrationController) APIRegister(c *gin.Context) {
	limitBody(c, rc.MaxUploadBytes)

	req := registrationRequest{Stats: models.DefaultStats()}
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			respondError(c, "APIRegister", err)
			return
		}
		respondValidation(c, "APIRegister", err)
		return
	}

	player, err := rc.League.SubmitRegistration(models.Registration{
		Name: req.Name, Phone: req.Phone, WechatID: req.WechatID, Stats: req.Stats, Photo: req.Photo,
	})
	if err != nil {
		respondError(c, "APIRegister", err)
		return
	}
	c.JSON(http.StatusCreated, newPlayerResponse(player))
}

// playerResponse adds the derived overall rating to the stored record.
type playerResponse struct {
	models.Player
	Overall int `json:"overall"`
}

func newPlayerResponse(p models.Player) playerResponse {
	return playerResponse{Player: p, Overall: p.OverallRating()}
}

func playerResponses(players []models.Player) []playerResponse {
	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, newPlayerResponse(p))
	}
	return out
}
