// Package services: services/seed.go
package services

import (
	"fmt"

	"ycfl-league/models"
)

var seedTeamNames = [][2]string{
	{"صقور صنعاء", "萨那猎鹰"},
	{"نسور عدن", "亚丁雄鹰"},
	{"أسود تعز", "塔伊兹雄狮"},
	{"نجوم حضرموت", "哈德拉毛之星"},
	{"فرسان إب", "伊卜骑士"},
	{"تنانين تشنغدو", "成都飞龙"},
}

// SeedTeams returns the six league clubs with empty rosters and zeroed figures.
func SeedTeams() []models.Team {
	teams := make([]models.Team, 0, len(seedTeamNames))
	for i, names := range seedTeamNames {
		teams = append(teams, models.Team{
			ID:      fmt.Sprintf("team-%d", i+1),
			NameAr:  names[0],
			NameZh:  names[1],
			Players: []string{},
		})
	}
	return teams
}
