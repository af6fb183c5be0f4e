package web

import (
	"sort"

	"clubhub-app/internal/model"
)

type StandingEntry struct {
	TeamID         string `json:"team_id"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// BuildStandings ranks teams over completed matches: 3 points for a win,
// 1 for a draw, then goal difference, goals scored and name.
func BuildStandings(teams []model.Team, matches []model.Match) []StandingEntry {
	index := make(map[string]*StandingEntry)
	for _, t := range teams {
		index[t.ID] = &StandingEntry{TeamID: t.ID, Team: t.Name}
	}

	for _, match := range matches {
		if match.Status != model.MatchCompleted || match.HomeScore == nil || match.AwayScore == nil {
			continue
		}
		home := index[match.HomeTeamID]
		away := index[match.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		hs, as := *match.HomeScore, *match.AwayScore
		home.Played++
		away.Played++
		home.GoalsFor += hs
		home.GoalsAgainst += as
		away.GoalsFor += as
		away.GoalsAgainst += hs

		switch {
		case hs > as:
			home.Won++
			home.Points += 3
			away.Lost++
		case hs < as:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	standings := make([]StandingEntry, 0, len(index))
	for _, entry := range index {
		entry.GoalDifference = entry.GoalsFor - entry.GoalsAgainst
		standings = append(standings, *entry)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	return standings
}
