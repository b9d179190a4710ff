// Package controllers file: controllers/view.go
package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"ycfl-league/locale"
	"ycfl-league/logger"
	"ycfl-league/middleware"
	"ycfl-league/models"
	"ycfl-league/services"
)

// PlaceholderPhoto is shown on cards without an uploaded photo.
func PlaceholderPhoto(playerID string) string {
	return "https://picsum.photos/seed/" + playerID + "/200"
}

// TemplateFuncs are the helpers every page template may call.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{"safeURL": SafeImageURL}
}

// SafeImageURL lets stored photo and gallery sources through html/template.
// Only web URLs and inline image data are trusted.
func SafeImageURL(raw string) template.URL {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "data:image/"), strings.HasPrefix(raw, "/"):
		return template.URL(raw) // #nosec G203
	}
	return template.URL("#")
}

// StatLine is one labelled stat on a player card.
type StatLine struct {
	Label string
	Value int
}

// PlayerCard is the view model behind the player card partial.
type PlayerCard struct {
	ID         string
	Name       string
	Overall    int
	Photo      string
	Stats      []StatLine
	TeamName   string
	Status     models.PlayerStatus
	IsFeatured bool
	Phone      string
	WechatID   string
	TeamID     string
}

func newPlayerCard(p models.Player, lang locale.Lang, teamNames map[string]string) PlayerCard {
	labels := lang.StatLabels()
	values := p.Stats.Values()
	stats := make([]StatLine, len(values))
	for i, v := range values {
		stats[i] = StatLine{Label: labels[i], Value: v}
	}
	photo := p.Photo
	if photo == "" {
		photo = PlaceholderPhoto(p.ID)
	}
	return PlayerCard{
		ID:         p.ID,
		Name:       p.Name,
		Overall:    p.OverallRating(),
		Photo:      photo,
		Stats:      stats,
		TeamName:   teamNames[p.TeamID],
		Status:     p.Status,
		IsFeatured: p.IsFeatured,
		Phone:      p.Phone,
		WechatID:   p.WechatID,
		TeamID:     p.TeamID,
	}
}

func playerCards(players []models.Player, lang locale.Lang, teamNames map[string]string) []PlayerCard {
	cards := make([]PlayerCard, 0, len(players))
	for _, p := range players {
		cards = append(cards, newPlayerCard(p, lang, teamNames))
	}
	return cards
}

func teamNameIndex(teams []models.Team, lang locale.Lang) map[string]string {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = lang.TeamName(t)
	}
	return names
}

// StandingRow is one ranked line of the league table.
type StandingRow struct {
	Rank int `json:"rank"`
	models.Team
	Name           string `json:"-"`
	GoalDifference int    `json:"goalDifference"`
}

func standingRows(ranked []models.Team, lang locale.Lang) []StandingRow {
	rows := make([]StandingRow, len(ranked))
	for i, t := range ranked {
		rows[i] = StandingRow{Rank: i + 1, Team: t, Name: lang.TeamName(t), GoalDifference: t.GoalDifference()}
	}
	return rows
}

// pageData is the base template context every page receives.
func pageData(c *gin.Context, extra gin.H) gin.H {
	lang := middleware.Lang(c)
	data := gin.H{
		"Lang":    string(lang),
		"Dir":     lang.Dir(),
		"T":       lang.Strings(),
		"IsAdmin": middleware.IsAdmin(c),
		"Path":    c.Request.URL.Path,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// isTooLarge reports whether err came from a body over the upload limit.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// limitBody caps the request body at limit bytes; zero leaves it alone.
func limitBody(c *gin.Context, limit int64) {
	if limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
}

// statusForError maps league errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case isTooLarge(err):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRosterFull):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnknownTeamField),
		errors.Is(err, services.ErrNotAnImage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorCode is the machine-readable "error" value of a JSON error body.
func errorCode(err error) string {
	switch {
	case isTooLarge(err):
		return "payload_too_large"
	case errors.Is(err, services.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, services.ErrTeamNotFound):
		return "team_not_found"
	case errors.Is(err, services.ErrImageNotFound):
		return "image_not_found"
	case errors.Is(err, services.ErrRosterFull):
		return "roster_full"
	case errors.Is(err, services.ErrUnknownTeamField):
		return "unknown_team_field"
	case errors.Is(err, services.ErrNotAnImage):
		return "not_an_image"
	default:
		return "internal_error"
	}
}

func respondError(c *gin.Context, handler string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("%s: %v", handler, err)
		c.JSON(status, gin.H{"error": errorCode(err)})
		return
	}
	logger.Warn.Printf("%s: %v", handler, err)
	c.JSON(status, gin.H{"error": errorCode(err), "message": err.Error()})
}
