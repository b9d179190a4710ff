// Package controllers provides HTTP handlers for various admin operations.
// File: controllers/admin_controller.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"ycfl-league/logger"
	"ycfl-league/metrics"
	"ycfl-league/middleware"
	"ycfl-league/models"
	"ycfl-league/services"
)

// ---------------- Admin Controller ----------------

// admin panel tabs
const (
	TabRequests = "requests"
	TabTeams    = "teams"
	TabPlayers  = "players"
	TabGallery  = "gallery"
)

// AdminController provides registration review, roster, standings and gallery management.
type AdminController struct {
	League         services.LeagueServiceInterface
	Metrics        metrics.Publisher // nil disables publishing
	MaxUploadBytes int64
}

// NewAdminController initializes a new instance of AdminController
func NewAdminController(league services.LeagueServiceInterface, publisher metrics.Publisher, maxUploadBytes int64) *AdminController {
	return &AdminController{League: league, Metrics: publisher, MaxUploadBytes: maxUploadBytes}
}

func normalizeTab(tab string) string {
	switch tab {
	case TabTeams, TabPlayers, TabGallery:
		return tab
	default:
		return TabRequests
	}
}

// publishMetrics snapshots the league and ships it without blocking the request.
func (ac *AdminController) publishMetrics() {
	if ac.Metrics == nil {
		return
	}
	summary := ac.League.Summary()
	go ac.Metrics.PublishSummary(summary)
}

// AdminTeam is a team row on the admin teams tab.
type AdminTeam struct {
	models.Team
	Name    string
	Members []PlayerCard
}

// ---------------- admin panel ----------------

// AdminPanel renders the admin dashboard for the selected tab.
func (ac *AdminController) AdminPanel(c *gin.Context) {
	lang := middleware.Lang(c)
	tab := normalizeTab(c.Query("tab"))

	teams := ac.League.Teams()
	names := teamNameIndex(teams, lang)
	all := ac.League.Players(services.FilterAll)

	byID := make(map[string]models.Player, len(all))
	var pending, reviewed []models.Player
	for _, p := range all {
		byID[p.ID] = p
		if p.Status == models.StatusPending {
			pending = append(pending, p)
		} else {
			reviewed = append(reviewed, p)
		}
	}

	adminTeams := make([]AdminTeam, 0, len(teams))
	for _, t := range teams {
		members := make([]PlayerCard, 0, len(t.Players))
		for _, id := range t.Players {
			if p, ok := byID[id]; ok {
				members = append(members, newPlayerCard(p, lang, names))
			}
		}
		adminTeams = append(adminTeams, AdminTeam{Team: t, Name: names[t.ID], Members: members})
	}

	logger.Debug.Printf("AdminPanel: tab=%s pending=%d reviewed=%d", tab, len(pending), len(reviewed))
	c.HTML(http.StatusOK, "admin.html", pageData(c, gin.H{
		"Tab":            tab,
		"Pending":        playerCards(pending, lang, names),
		"Players":        playerCards(reviewed, lang, names),
		"Teams":          adminTeams,
		"Gallery":        ac.League.Gallery(),
		"Summary":        ac.League.Summary(),
		"Flashes":        middleware.Flashes(c),
		"RosterCapacity": models.RosterCapacity,
	}))
}

// redirectToTab sends the admin back to the panel tab the form came from.
func redirectToTab(c *gin.Context, fallback string) {
	tab := c.PostForm("tab")
	if tab == "" {
		tab = fallback
	}
	c.Redirect(http.StatusFound, "/admin?tab="+url.QueryEscape(normalizeTab(tab)))
}

// flashError queues a localized notice for a failed form action.
func (ac *AdminController) flashError(c *gin.Context, handler string, err error) {
	if errors.Is(err, services.ErrRosterFull) {
		logger.Warn.Printf("%s: %v", handler, err)
		middleware.AddFlash(c, middleware.Lang(c).Strings().RosterFull)
		return
	}
	if isTooLarge(err) {
		logger.Warn.Printf("%s: %v", handler, err)
		middleware.AddFlash(c, middleware.Lang(c).Strings().UploadTooLarge)
		return
	}
	if statusForError(err) == http.StatusInternalServerError {
		logger.Error.Printf("%s: %v", handler, err)
	} else {
		logger.Warn.Printf("%s: %v", handler, err)
	}
	middleware.AddFlash(c, err.Error())
}

// playerAction adapts a single-player League operation to a form POST.
func (ac *AdminController) playerAction(handler, fallbackTab string, op func(string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := op(id); err != nil {
			ac.flashError(c, handler, err)
		} else {
			logger.Info.Printf("%s: player %s updated by admin", handler, id)
			ac.publishMetrics()
		}
		redirectToTab(c, fallbackTab)
	}
}

// ApprovePlayer handles POST /admin/players/:id/approve.
func (ac *AdminController) ApprovePlayer(c *gin.Context) {
	ac.playerAction("ApprovePlayer", TabRequests, ac.League.Approve)(c)
}

// RejectPlayer handles POST /admin/players/:id/reject.
func (ac *AdminController) RejectPlayer(c *gin.Context) {
	ac.playerAction("RejectPlayer", TabRequests, ac.League.Reject)(c)
}

// DeletePlayer handles POST /admin/players/:id/delete.
func (ac *AdminController) DeletePlayer(c *gin.Context) {
	ac.playerAction("DeletePlayer", TabPlayers, ac.League.Delete)(c)
}

// FeaturePlayer handles POST /admin/players/:id/feature.
func (ac *AdminController) FeaturePlayer(c *gin.Context) {
	ac.playerAction("FeaturePlayer", TabPlayers, ac.League.ToggleFeatured)(c)
}

// AssignPlayer handles POST /admin/players/:id/assign with form field teamId.
func (ac *AdminController) AssignPlayer(c *gin.Context) {
	teamID := c.PostForm("teamId")
	ac.playerAction("AssignPlayer", TabPlayers, func(id string) error {
		return ac.League.AssignToTeam(id, teamID)
	})(c)
}

// UpdateTeam handles POST /admin/teams/:id. It accepts either a single
// field/value pair or any of the editable fields as named form values.
func (ac *AdminController) UpdateTeam(c *gin.Context) {
	teamID := c.Param("id")

	updates := make([][2]string, 0, len(services.TeamFields))
	if field := c.PostForm("field"); field != "" {
		updates = append(updates, [2]string{field, c.PostForm("value")})
	} else {
		for _, field := range services.TeamFields {
			if value, ok := c.GetPostForm(field); ok {
				updates = append(updates, [2]string{field, value})
			}
		}
	}

	for _, u := range updates {
		if err := ac.League.UpdateTeamField(teamID, u[0], u[1]); err != nil {
			ac.flashError(c, "UpdateTeam", err)
			redirectToTab(c, TabTeams)
			return
		}
	}
	logger.Info.Printf("UpdateTeam: team %s updated (%d fields)", teamID, len(updates))
	redirectToTab(c, TabTeams)
}

// UploadGalleryImage handles POST /admin/gallery (multipart field "image").
func (ac *AdminController) UploadGalleryImage(c *gin.Context) {
	limitBody(c, ac.MaxUploadBytes)

	fh, err := c.FormFile("image")
	if isTooLarge(err) {
		ac.flashError(c, "UploadGalleryImage", err)
		redirectToTab(c, TabGallery)
		return
	}
	if err != nil {
		ac.flashError(c, "UploadGalleryImage", fmt.Errorf("%w: no file received", services.ErrNotAnImage))
		redirectToTab(c, TabGallery)
		return
	}
	dataURI, err := services.FileHeaderToDataURI(fh)
	if err != nil {
		ac.flashError(c, "UploadGalleryImage", err)
		redirectToTab(c, TabGallery)
		return
	}
	img := ac.League.AddImage(dataURI, c.PostForm("caption"))
	logger.Info.Printf("UploadGalleryImage: image %s added from %s", img.ID, fh.Filename)
	ac.publishMetrics()
	redirectToTab(c, TabGallery)
}

// DeleteGalleryImage handles POST /admin/gallery/:id/delete.
func (ac *AdminController) DeleteGalleryImage(c *gin.Context) {
	if err := ac.League.DeleteImage(c.Param("id")); err != nil {
		ac.flashError(c, "DeleteGalleryImage", err)
	} else {
		ac.publishMetrics()
	}
	redirectToTab(c, TabGallery)
}

// ---------------- league management ----------------

// ResetLeague returns the league to its seed state.
func (ac *AdminController) ResetLeague(c *gin.Context) {
	logger.Info.Println("ResetLeague: admin requested a full reset")
	ac.League.Reset()
	ac.publishMetrics()
	redirectToTab(c, TabRequests)
}

// ---------------- admin JSON API ----------------

// APIListPlayers handles GET /api/admin/players?status=.
func (ac *AdminController) APIListPlayers(c *gin.Context) {
	filter := services.ParsePlayerFilter(c.Query("status"))
	c.JSON(http.StatusOK, playerResponses(ac.League.Players(filter)))
}

// apiPlayerAction runs op and answers with the updated player.
func (ac *AdminController) apiPlayerAction(c *gin.Context, handler string, op func(string) error) {
	id := c.Param("id")
	if err := op(id); err != nil {
		respondError(c, handler, err)
		return
	}
	ac.publishMetrics()
	player, err := ac.League.Player(id)
	if err != nil {
		respondError(c, handler, err)
		return
	}
	c.JSON(http.StatusOK, newPlayerResponse(player))
}

func (ac *AdminController) APIApprove(c *gin.Context) {
	ac.apiPlayerAction(c, "APIApprove", ac.League.Approve)
}

func (ac *AdminController) APIReject(c *gin.Context) {
	ac.apiPlayerAction(c, "APIReject", ac.League.Reject)
}

func (ac *AdminController) APIToggleFeatured(c *gin.Context) {
	ac.apiPlayerAction(c, "APIToggleFeatured", ac.League.ToggleFeatured)
}

// APIDeletePlayer handles DELETE /api/admin/players/:id.
func (ac *AdminController) APIDeletePlayer(c *gin.Context) {
	if err := ac.League.Delete(c.Param("id")); err != nil {
		respondError(c, "APIDeletePlayer", err)
		return
	}
	ac.publishMetrics()
	c.Status(http.StatusNoContent)
}

type assignRequest struct {
	TeamID *string `json:"teamId" binding:"required"`
}

// APIAssign handles PUT /api/admin/players/:id/team. An empty teamId unassigns.
func (ac *AdminController) APIAssign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "APIAssign", err)
		return
	}
	ac.apiPlayerAction(c, "APIAssign", func(id string) error {
		return ac.League.AssignToTeam(id, *req.TeamID)
	})
}

// APIUpdateTeam handles PATCH /api/admin/teams/:id with a JSON object of
// field -> value. Fields are applied in TeamFields order.
func (ac *AdminController) APIUpdateTeam(c *gin.Context) {
	teamID := c.Param("id")
	// UseNumber keeps large integers out of float exponent form.
	var body map[string]interface{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		respondValidation(c, "APIUpdateTeam", err)
		return
	}

	known := make(map[string]bool, len(services.TeamFields))
	for _, f := range services.TeamFields {
		known[f] = true
	}
	for field := range body {
		if !known[field] {
			respondError(c, "APIUpdateTeam", fmt.Errorf("%w: %s", services.ErrUnknownTeamField, field))
			return
		}
	}

	for _, field := range services.TeamFields {
		raw, ok := body[field]
		if !ok {
			continue
		}
		if err := ac.League.UpdateTeamField(teamID, field, fmt.Sprint(raw)); err != nil {
			respondError(c, "APIUpdateTeam", err)
			return
		}
	}

	team, err := ac.League.Team(teamID)
	if err != nil {
		respondError(c, "APIUpdateTeam", err)
		return
	}
	c.JSON(http.StatusOK, team)
}

type galleryRequest struct {
	URL     string `json:"url" binding:"required,url|datauri"`
	Caption string `json:"caption" binding:"max=120"`
}

// APIAddImage handles POST /api/admin/gallery with a URL or data URI.
func (ac *AdminController) APIAddImage(c *gin.Context) {
	var req galleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "APIAddImage", err)
		return
	}
	img := ac.League.AddImage(req.URL, req.Caption)
	ac.publishMetrics()
	c.JSON(http.StatusCreated, img)
}

// APIDeleteImage handles DELETE /api/admin/gallery/:id.
func (ac *AdminController) APIDeleteImage(c *gin.Context) {
	if err := ac.League.DeleteImage(c.Param("id")); err != nil {
		respondError(c, "APIDeleteImage", err)
		return
	}
	ac.publishMetrics()
	c.Status(http.StatusNoContent)
}
