// Package controllers file: controllers/api_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
	"ycfl-league/middleware"
	"ycfl-league/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// APIController serves the public read-only JSON API and exports.
type APIController struct {
	League services.LeagueServiceInterface
}

func NewAPIController(league services.LeagueServiceInterface) *APIController {
	return &APIController{League: league}
}

// Standings handles GET /api/standings.
func (ac *APIController) Standings(c *gin.Context) {
	c.JSON(http.StatusOK, standingRows(ac.League.Standings(), middleware.Lang(c)))
}

// StandingsCSV handles GET /api/standings.csv.
func (ac *APIController) StandingsCSV(c *gin.Context) {
	data, err := services.StandingsCSV(ac.League.Standings())
	if err != nil {
		respondError(c, "StandingsCSV", err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\"standings.csv\"")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// StandingsXLSX handles GET /api/standings.xlsx.
func (ac *APIController) StandingsXLSX(c *gin.Context) {
	data, err := services.StandingsXLSX(ac.League.Standings())
	if err != nil {
		respondError(c, "StandingsXLSX", err)
		return
	}
	logger.Debug.Printf("StandingsXLSX: %d bytes", len(data))
	c.Header("Content-Disposition", "attachment; filename=\"standings.xlsx\"")
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Teams handles GET /api/teams.
func (ac *APIController) Teams(c *gin.Context) {
	c.JSON(http.StatusOK, ac.League.Teams())
}

// FeaturedPlayers handles GET /api/players/featured.
func (ac *APIController) FeaturedPlayers(c *gin.Context) {
	c.JSON(http.StatusOK, playerResponses(ac.League.Players(services.FilterFeatured)))
}

// Gallery handles GET /api/gallery.
func (ac *APIController) Gallery(c *gin.Context) {
	c.JSON(http.StatusOK, ac.League.Gallery())
}
