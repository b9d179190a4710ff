// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
	"ycfl-league/middleware"
	"ycfl-league/services"
)

// PageController renders the public pages.
type PageController struct {
	League      services.LeagueServiceInterface
	RegisterURL string
	QREncoder   services.QRCodeEncoder // nil uses the real encoder
}

func NewPageController(league services.LeagueServiceInterface, registerURL string) *PageController {
	return &PageController{League: league, RegisterURL: registerURL}
}

// Health reports liveness.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Home shows featured approved players and the gallery.
func (pc *PageController) Home(c *gin.Context) {
	lang := middleware.Lang(c)
	names := teamNameIndex(pc.League.Teams(), lang)
	featured := pc.League.Players(services.FilterFeatured)

	logger.Debug.Printf("Home: rendering %d featured players", len(featured))
	c.HTML(http.StatusOK, "home.html", pageData(c, gin.H{
		"Cards":   playerCards(featured, lang, names),
		"Gallery": pc.League.Gallery(),
	}))
}

// Standings renders the ranked league table.
func (pc *PageController) Standings(c *gin.Context) {
	lang := middleware.Lang(c)
	c.HTML(http.StatusOK, "standings.html", pageData(c, gin.H{
		"Rows": standingRows(pc.League.Standings(), lang),
	}))
}

// GetQRCode serves a PNG QR code pointing at the registration page.
func (pc *PageController) GetQRCode(c *gin.Context) {
	logger.Info.Println("GetQRCode: Generating QR code")

	qrBytes, err := services.GenerateQRCode(pc.RegisterURL, 300, pc.QREncoder)
	if err != nil {
		logger.Error.Printf("GetQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Disposition", "inline; filename=\"register-qrcode.png\"")
	c.Data(http.StatusOK, "image/png", qrBytes)
}

// ToggleLanguage switches between Arabic and Chinese and returns to the
// page the visitor came from.
func (pc *PageController) ToggleLanguage(c *gin.Context) {
	next := middleware.Lang(c).Toggle()
	if err := middleware.SetLang(c, next); err != nil {
		logger.Error.Printf("ToggleLanguage: failed to save session: %v", err)
	}
	c.Redirect(http.StatusFound, backTarget(c.Request.Referer()))
}

// backTarget keeps only the local path and query of a referer, without any lang override.
func backTarget(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	q := u.Query()
	q.Del("lang")
	target := u.Path
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	return target
}
