// Package services: services/standings.go
package services

import (
	"sort"

	"ycfl-league/models"
)

// ComputeStandings ranks teams by points, then goal difference, both
// descending. Ties on both keys keep their input order. The input slice
// is left untouched.
func ComputeStandings(teams []models.Team) []models.Team {
	ranked := make([]models.Team, len(teams))
	for i, t := range teams {
		ranked[i] = t.Clone()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].GoalDifference() > ranked[j].GoalDifference()
	})
	return ranked
}
