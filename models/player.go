// Package models defines data structures used across the application.
// File: models/player.go
package models

import "math"

// ----------------------- stat bounds -----------------------

const (
	MinStat     = 30 // lowest self-rating a registration form accepts
	MaxStat     = 99 // highest self-rating a registration form accepts
	DefaultStat = 70 // starting slider value on the registration form
)

// ----------------------- player status -----------------------

// PlayerStatus is the lifecycle state of a registration.
type PlayerStatus string

const (
	StatusPending  PlayerStatus = "pending"
	StatusApproved PlayerStatus = "approved"
	StatusRejected PlayerStatus = "rejected"
)

// ----------------------- player stats -----------------------

// PlayerStats holds the six self-rated skill attributes.
type PlayerStats struct {
	Speed     int `json:"speed" form:"speed,default=70"`
	Shooting  int `json:"shooting" form:"shooting,default=70"`
	Passing   int `json:"passing" form:"passing,default=70"`
	Dribbling int `json:"dribbling" form:"dribbling,default=70"`
	Defending int `json:"defending" form:"defending,default=70"`
	Physical  int `json:"physical" form:"physical,default=70"`
}

// DefaultStats is what a fresh registration form starts with.
func DefaultStats() PlayerStats {
	return PlayerStats{
		Speed: DefaultStat, Shooting: DefaultStat, Passing: DefaultStat,
		Dribbling: DefaultStat, Defending: DefaultStat, Physical: DefaultStat,
	}
}

// Values returns the stats in display order.
func (s PlayerStats) Values() [6]int {
	return [6]int{s.Speed, s.Shooting, s.Passing, s.Dribbling, s.Defending, s.Physical}
}

// Clamped returns a copy with every attribute forced into [MinStat, MaxStat].
func (s PlayerStats) Clamped() PlayerStats {
	return PlayerStats{
		Speed:     clampStat(s.Speed),
		Shooting:  clampStat(s.Shooting),
		Passing:   clampStat(s.Passing),
		Dribbling: clampStat(s.Dribbling),
		Defending: clampStat(s.Defending),
		Physical:  clampStat(s.Physical),
	}
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// ----------------------- player -----------------------

// Player is a league registration.
type Player struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	WechatID   string       `json:"wechatId"`
	Stats      PlayerStats  `json:"stats"`
	Rating     *int         `json:"rating,omitempty"` // explicit overall; derived from Stats when nil
	Photo      string       `json:"photo,omitempty"`  // URL or data URI
	Status     PlayerStatus `json:"status"`
	TeamID     string       `json:"teamId,omitempty"` // empty means unassigned
	IsFeatured bool         `json:"isFeatured"`
}

// OverallRating returns the explicit rating, or the rounded mean of the stats.
func (p Player) OverallRating() int {
	if p.Rating != nil {
		return *p.Rating
	}
	return ComputeOverallRating(p.Stats)
}

// IsShowcased reports whether the player belongs on the home page.
func (p Player) IsShowcased() bool {
	return p.Status == StatusApproved && p.IsFeatured
}

// ComputeOverallRating rounds the mean of the six stats half-up.
func ComputeOverallRating(s PlayerStats) int {
	sum := 0
	for _, v := range s.Values() {
		sum += v
	}
	mean := float64(sum) / float64(len(s.Values()))
	return int(math.Floor(mean + 0.5))
}

// Registration is what a visitor submits on the sign-up form.
type Registration struct {
	Name     string
	Phone    string
	WechatID string
	Stats    PlayerStats
	Photo    string
}
