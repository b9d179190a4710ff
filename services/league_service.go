// Package services: services/league_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"ycfl-league/logger"
	"ycfl-league/models"
)

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrRosterFull       = errors.New("team roster is full")
	ErrUnknownTeamField = errors.New("unknown team field")
	ErrImageNotFound    = errors.New("gallery image not found")
)

// DefaultCaption labels gallery uploads that arrive without one.
const DefaultCaption = "YCFL Match Moment"

// PlayerFilter selects a view of the player list.
type PlayerFilter string

const (
	FilterAll      PlayerFilter = "all"
	FilterPending  PlayerFilter = "pending"
	FilterApproved PlayerFilter = "approved"
	FilterRejected PlayerFilter = "rejected"
	FilterFeatured PlayerFilter = "featured" // approved and featured
)

// ParsePlayerFilter maps a query value to a filter, defaulting to FilterAll.
func ParsePlayerFilter(raw string) PlayerFilter {
	switch f := PlayerFilter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterPending, FilterApproved, FilterRejected, FilterFeatured:
		return f
	default:
		return FilterAll
	}
}

type LeagueServiceInterface interface {
	SubmitRegistration(reg models.Registration) (models.Player, error)
	Approve(playerID string) error
	Reject(playerID string) error
	Delete(playerID string) error
	AssignToTeam(playerID, teamID string) error
	ToggleFeatured(playerID string) error
	UpdateTeamField(teamID, field, value string) error

	Player(playerID string) (models.Player, error)
	Players(filter PlayerFilter) []models.Player
	Team(teamID string) (models.Team, error)
	Teams() []models.Team
	Standings() []models.Team
	Summary() models.LeagueSummary

	Gallery() []models.GalleryImage
	AddImage(url, caption string) models.GalleryImage
	DeleteImage(imageID string) error

	Reset()
}

// LeagueStore is the single owner of league state. Every mutation runs
// under mu so rosters and player team ids never disagree.
type LeagueStore struct {
	mu      sync.RWMutex
	players map[string]*models.Player
	order   []string // player ids in submission order
	teams   []*models.Team
	gallery []models.GalleryImage

	now   func() time.Time
	newID func() string
}

// NewLeagueStore creates a store holding the seed teams.
func NewLeagueStore() *LeagueStore {
	s := &LeagueStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
	s.Reset()
	return s
}

// Reset returns the store to the seed state.
func (s *LeagueStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]*models.Player)
	s.order = nil
	s.teams = nil
	for _, t := range SeedTeams() {
		team := t
		s.teams = append(s.teams, &team)
	}
	s.gallery = nil
	logger.Info.Printf("ResetLeague: store reset to %d seed teams", len(s.teams))
}

// ----------------------- registration lifecycle -----------------------

// SubmitRegistration records a new pending player.
func (s *LeagueStore) SubmitRegistration(reg models.Registration) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.Player{
		ID:       s.newID(),
		Name:     strings.TrimSpace(reg.Name),
		Phone:    strings.TrimSpace(reg.Phone),
		WechatID: strings.TrimSpace(reg.WechatID),
		Stats:    reg.Stats.Clamped(),
		Photo:    reg.Photo,
		Status:   models.StatusPending,
	}
	s.players[p.ID] = p
	s.order = append(s.order, p.ID)

	logger.Info.Printf("SubmitRegistration: player %s (%s) is pending review", p.ID, p.Name)
	return *p, nil
}

// Approve marks the player approved. Approving twice is harmless.
func (s *LeagueStore) Approve(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.playerLocked(playerID)
	if err != nil {
		logger.Warn.Printf("Approve: %v", err)
		return err
	}
	p.Status = models.StatusApproved
	logger.Info.Printf("Approve: player %s approved", playerID)
	return nil
}

// Reject keeps the record with status rejected and takes the player off any roster.
func (s *LeagueStore) Reject(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.playerLocked(playerID)
	if err != nil {
		logger.Warn.Printf("Reject: %v", err)
		return err
	}
	p.Status = models.StatusRejected
	s.removeFromRostersLocked(playerID)
	p.TeamID = ""
	logger.Info.Printf("Reject: player %s rejected", playerID)
	return nil
}

// Delete removes the player record and every roster reference to it.
func (s *LeagueStore) Delete(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.playerLocked(playerID); err != nil {
		logger.Warn.Printf("Delete: %v", err)
		return err
	}
	s.removeFromRostersLocked(playerID)
	delete(s.players, playerID)
	for i, id := range s.order {
		if id == playerID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	logger.Info.Printf("Delete: player %s removed", playerID)
	return nil
}

// ToggleFeatured flips the showcase flag. Status is not checked here; the
// home page only shows players that are also approved.
func (s *LeagueStore) ToggleFeatured(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.playerLocked(playerID)
	if err != nil {
		logger.Warn.Printf("ToggleFeatured: %v", err)
		return err
	}
	p.IsFeatured = !p.IsFeatured
	logger.Info.Printf("ToggleFeatured: player %s featured=%t", playerID, p.IsFeatured)
	return nil
}

// ----------------------- rosters -----------------------

// AssignToTeam moves a player onto teamID, or off every team when teamID
// is empty. The player is always taken off their current roster first, so
// a full target leaves them unassigned and returns ErrRosterFull.
func (s *LeagueStore) AssignToTeam(playerID, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.playerLocked(playerID)
	if err != nil {
		logger.Warn.Printf("AssignToTeam: %v", err)
		return err
	}
	var target *models.Team
	if teamID != "" {
		if target, err = s.teamLocked(teamID); err != nil {
			logger.Warn.Printf("AssignToTeam: %v", err)
			return err
		}
	}

	// clear any old roster spot this player had
	s.removeFromRostersLocked(playerID)
	p.TeamID = ""

	if target == nil {
		logger.Info.Printf("AssignToTeam: player %s unassigned", playerID)
		return nil
	}
	if target.IsFull() {
		logger.Warn.Printf("AssignToTeam: team %s is full, player %s left unassigned", teamID, playerID)
		return fmt.Errorf("assign %s to %s: %w", playerID, teamID, ErrRosterFull)
	}

	target.Players = append(target.Players, playerID)
	p.TeamID = teamID
	logger.Info.Printf("AssignToTeam: player %s joined %s (%d/%d)", playerID, teamID, len(target.Players), models.RosterCapacity)
	return nil
}

// UpdateTeamField sets one editable team attribute. Numeric fields take 0
// when value is not an integer.
func (s *LeagueStore) UpdateTeamField(teamID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.teamLocked(teamID)
	if err != nil {
		logger.Warn.Printf("UpdateTeamField: %v", err)
		return err
	}

	switch field {
	case "nameAr":
		t.NameAr = value
	case "nameZh":
		t.NameZh = value
	default:
		target := numericField(t, field)
		if target == nil {
			logger.Warn.Printf("UpdateTeamField: team %s has no editable field '%s'", teamID, field)
			return fmt.Errorf("%w: %s", ErrUnknownTeamField, field)
		}
		*target = atoiOrZero(value)
	}

	logger.Info.Printf("UpdateTeamField: team %s %s=%q", teamID, field, value)
	return nil
}

// TeamFields lists the attribute names UpdateTeamField accepts.
var TeamFields = []string{"nameAr", "nameZh", "played", "won", "drawn", "lost", "goalsFor", "goalsAgainst", "points"}

func numericField(t *models.Team, field string) *int {
	switch field {
	case "played":
		return &t.Played
	case "won":
		return &t.Won
	case "drawn":
		return &t.Drawn
	case "lost":
		return &t.Lost
	case "goalsFor":
		return &t.GoalsFor
	case "goalsAgainst":
		return &t.GoalsAgainst
	case "points":
		return &t.Points
	}
	return nil
}

func atoiOrZero(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

// ----------------------- read side -----------------------

// Player returns a copy of one player.
func (s *LeagueStore) Player(playerID string) (models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.playerLocked(playerID)
	if err != nil {
		return models.Player{}, err
	}
	return *p, nil
}

// Players returns copies in submission order.
func (s *LeagueStore) Players(filter PlayerFilter) []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Player, 0, len(s.order))
	for _, id := range s.order {
		p := s.players[id]
		if matchesFilter(*p, filter) {
			out = append(out, *p)
		}
	}
	return out
}

func matchesFilter(p models.Player, filter PlayerFilter) bool {
	switch filter {
	case FilterPending:
		return p.Status == models.StatusPending
	case FilterApproved:
		return p.Status == models.StatusApproved
	case FilterRejected:
		return p.Status == models.StatusRejected
	case FilterFeatured:
		return p.IsShowcased()
	default:
		return true
	}
}

// Team returns a copy of one team.
func (s *LeagueStore) Team(teamID string) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.teamLocked(teamID)
	if err != nil {
		return models.Team{}, err
	}
	return t.Clone(), nil
}

// Teams returns copies in seed order.
func (s *LeagueStore) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t.Clone())
	}
	return out
}

// Standings ranks the current teams.
func (s *LeagueStore) Standings() []models.Team {
	return ComputeStandings(s.Teams())
}

// Summary counts records for dashboards and metrics.
func (s *LeagueStore) Summary() models.LeagueSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum models.LeagueSummary
	for _, p := range s.players {
		switch p.Status {
		case models.StatusPending:
			sum.Pending++
		case models.StatusApproved:
			sum.Approved++
		case models.StatusRejected:
			sum.Rejected++
		}
		if p.IsShowcased() {
			sum.Featured++
		}
	}
	for _, t := range s.teams {
		sum.AssignedPlayers += len(t.Players)
	}
	sum.GalleryImages = len(s.gallery)
	return sum
}

// ----------------------- gallery -----------------------

// Gallery returns the images newest first.
func (s *LeagueStore) Gallery() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GalleryImage{}, s.gallery...)
}

// AddImage puts an image at the front of the gallery.
func (s *LeagueStore) AddImage(url, caption string) models.GalleryImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(caption) == "" {
		caption = DefaultCaption
	}
	img := models.GalleryImage{
		ID:      s.newID(),
		URL:     url,
		Caption: caption,
		Date:    s.now().Format("2006-01-02"),
	}
	s.gallery = append([]models.GalleryImage{img}, s.gallery...)
	logger.Info.Printf("AddImage: image %s added, gallery size %d", img.ID, len(s.gallery))
	return img
}

// DeleteImage removes one gallery image.
func (s *LeagueStore) DeleteImage(imageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, img := range s.gallery {
		if img.ID == imageID {
			s.gallery = append(s.gallery[:i], s.gallery[i+1:]...)
			logger.Info.Printf("DeleteImage: image %s removed", imageID)
			return nil
		}
	}
	logger.Warn.Printf("DeleteImage: no image with id %s", imageID)
	return fmt.Errorf("%w: %s", ErrImageNotFound, imageID)
}

// ----------------------- helpers (caller holds mu) -----------------------

func (s *LeagueStore) playerLocked(playerID string) (*models.Player, error) {
	p, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	return p, nil
}

func (s *LeagueStore) teamLocked(teamID string) (*models.Team, error) {
	for _, t := range s.teams {
		if t.ID == teamID {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
}

func (s *LeagueStore) removeFromRostersLocked(playerID string) {
	for _, t := range s.teams {
		kept := t.Players[:0]
		for _, id := range t.Players {
			if id != playerID {
				kept = append(kept, id)
			}
		}
		t.Players = kept
	}
}
