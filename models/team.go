// Package models
// File: models/team.go
package models

// RosterCapacity is the most players a team may carry.
const RosterCapacity = 7

// Team is one of the league's fixed clubs. The season figures are entered
// by the administrator and carry no arithmetic relationship to each other.
type Team struct {
	ID           string   `json:"id"`
	NameAr       string   `json:"nameAr"`
	NameZh       string   `json:"nameZh"`
	Players      []string `json:"players"` // player ids in roster order
	Played       int      `json:"played"`
	Won          int      `json:"won"`
	Drawn        int      `json:"drawn"`
	Lost         int      `json:"lost"`
	GoalsFor     int      `json:"goalsFor"`
	GoalsAgainst int      `json:"goalsAgainst"`
	Points       int      `json:"points"`
}

// GoalDifference is goals scored minus goals conceded.
func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// IsFull reports whether the roster has reached RosterCapacity.
func (t Team) IsFull() bool {
	return len(t.Players) >= RosterCapacity
}

// HasPlayer reports whether playerID is on the roster.
func (t Team) HasPlayer(playerID string) bool {
	for _, id := range t.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no roster storage with t.
func (t Team) Clone() Team {
	c := t
	c.Players = append([]string(nil), t.Players...)
	if c.Players == nil {
		c.Players = []string{}
	}
	return c
}

// GalleryImage is a match-moment photo shown on the home page.
type GalleryImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"` // URL or data URI
	Caption string `json:"caption"`
	Date    string `json:"date"`
}

// LeagueSummary is a point-in-time count of league records.
type LeagueSummary struct {
	Pending         int `json:"pending"`
	Approved        int `json:"approved"`
	Rejected        int `json:"rejected"`
	Featured        int `json:"featured"`
	AssignedPlayers int `json:"assignedPlayers"`
	GalleryImages   int `json:"galleryImages"`
}
