// Package services: services/export_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"ycfl-league/models"
)

// StandingsSheet is the worksheet name in exported workbooks.
const StandingsSheet = "Standings"

var standingsHeader = []string{
	"rank", "id", "nameAr", "nameZh", "played", "won", "drawn", "lost",
	"goalsFor", "goalsAgainst", "goalDifference", "points",
}

func standingsRow(rank int, t models.Team) []interface{} {
	return []interface{}{
		rank, t.ID, t.NameAr, t.NameZh, t.Played, t.Won, t.Drawn, t.Lost,
		t.GoalsFor, t.GoalsAgainst, t.GoalDifference(), t.Points,
	}
}

// StandingsCSV writes ranked teams as UTF-8 CSV with a header row.
func StandingsCSV(ranked []models.Team) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(standingsHeader); err != nil {
		return nil, err
	}
	for i, t := range ranked {
		row := standingsRow(i+1, t)
		record := make([]string, len(row))
		for j, v := range row {
			switch val := v.(type) {
			case int:
				record[j] = strconv.Itoa(val)
			case string:
				record[j] = csvText(val)
			default:
				record[j] = fmt.Sprint(val)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvText stops spreadsheet apps from reading a team name as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

// StandingsXLSX builds a one-sheet workbook with numeric cells for figures.
func StandingsXLSX(ranked []models.Team) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StandingsSheet); err != nil {
		return nil, err
	}
	header := standingsHeader
	if err := f.SetSheetRow(StandingsSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, t := range ranked {
		row := standingsRow(i+1, t)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(StandingsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write standings workbook: %w", err)
	}
	return buf.Bytes(), nil
}
