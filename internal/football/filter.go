package football

import (
	"sort"
	"strings"
	"time"
)

// FilterTeams returns the teams whose name, short name or TLA contains
// query (case-insensitive), sorted alphabetically by name. An empty query
// returns all teams sorted.
func FilterTeams(teams []Team, query string) []Team {
	query = strings.ToLower(strings.TrimSpace(query))

	var filtered []Team
	for _, t := range teams {
		if query == "" ||
			strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.ShortName), query) ||
			strings.Contains(strings.ToLower(t.TLA), query) {
			filtered = append(filtered, t)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})
	return filtered
}

// SortMatchesByDate orders matches most recent first. Matches with an
// unparseable date sort last.
func SortMatchesByDate(matches []Match) []Match {
	sorted := make([]Match, len(matches))
	copy(sorted, matches)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339, sorted[i].UTCDate)
		tj, errj := time.Parse(time.RFC3339, sorted[j].UTCDate)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ti.After(tj)
	})
	return sorted
}

// Outcome letters used by RecentForm.
const (
	outcomeWin  = "W"
	outcomeDraw = "D"
	outcomeLoss = "L"
)

// RecentForm returns up to n outcome letters (most recent first) for teamID
// over its finished matches.
func RecentForm(matches []Match, teamID, n int) []string {
	var form []string
	for _, m := range SortMatchesByDate(matches) {
		if len(form) == n {
			break
		}
		if m.Status != "FINISHED" {
			continue
		}

		switch m.Score.Winner {
		case "DRAW":
			form = append(form, outcomeDraw)
		case "HOME_TEAM":
			if m.HomeTeam.ID == teamID {
				form = append(form, outcomeWin)
			} else {
				form = append(form, outcomeLoss)
			}
		case "AWAY_TEAM":
			if m.AwayTeam.ID == teamID {
				form = append(form, outcomeWin)
			} else {
				form = append(form, outcomeLoss)
			}
		}
	}
	return form
}
