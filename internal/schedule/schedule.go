package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// B2BPosition marks where a game sits in a back-to-back pair.
type B2BPosition string

const (
	B2BNone   B2BPosition = "None"
	B2BFirst  B2BPosition = "First"
	B2BSecond B2BPosition = "Second"
)

// Entry is one game on a team's season schedule. Back-to-back fields are
// derived when the index is built and are never read from the source data.
type Entry struct {
	Team       string      `json:"team"`
	Date       time.Time   `json:"date"`
	DayOfWeek  string      `json:"day_of_week"`
	Opponent   string      `json:"opponent"`
	Home       bool        `json:"home"`
	BackToBack bool        `json:"back_to_back"`
	B2BPos     B2BPosition `json:"back_to_back_position"`
}

// Index holds every team's schedule in chronological order. It is built
// once and read-only afterwards; concurrent queries are safe.
type Index struct {
	byTeam map[string][]Entry
	teams  []string
}

// DateOf truncates t to a calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewIndex sorts entries per team, rejects duplicate game dates for a
// team, and derives back-to-back flags: two games one calendar day apart
// are a pair, and both members are marked.
func NewIndex(entries []Entry) (*Index, error) {
	byTeam := make(map[string][]Entry)
	for _, e := range entries {
		team := strings.ToUpper(strings.TrimSpace(e.Team))
		e.Team = team
		e.Date = DateOf(e.Date)
		e.DayOfWeek = e.Date.Weekday().String()
		e.BackToBack = false
		e.B2BPos = B2BNone
		byTeam[team] = append(byTeam[team], e)
	}

	teams := make([]string, 0, len(byTeam))
	for team, games := range byTeam {
		sort.Slice(games, func(i, j int) bool { return games[i].Date.Before(games[j].Date) })
		for i := 1; i < len(games); i++ {
			if games[i].Date.Equal(games[i-1].Date) {
				return nil, fmt.Errorf("duplicate game date for %s: %s", team, games[i].Date.Format("2006-01-02"))
			}
			if games[i].Date.Sub(games[i-1].Date) == 24*time.Hour {
				games[i-1].BackToBack = true
				games[i].BackToBack = true
				games[i-1].B2BPos = B2BFirst
				games[i].B2BPos = B2BSecond
			}
		}
		byTeam[team] = games
		teams = append(teams, team)
	}
	sort.Strings(teams)

	return &Index{byTeam: byTeam, teams: teams}, nil
}

// Teams returns all team codes present in the index, sorted.
func (ix *Index) Teams() []string {
	out := make([]string, len(ix.teams))
	copy(out, ix.teams)
	return out
}

// Len returns the total number of games in the index.
func (ix *Index) Len() int {
	n := 0
	for _, games := range ix.byTeam {
		n += len(games)
	}
	return n
}

// GamesInRange returns a team's games between start and end inclusive,
// in ascending date order. An unknown team or an empty window yields an
// empty slice, not an error.
func (ix *Index) GamesInRange(team string, start, end time.Time) []Entry {
	start, end = DateOf(start), DateOf(end)
	out := make([]Entry, 0, 4)
	for _, e := range ix.byTeam[strings.ToUpper(strings.TrimSpace(team))] {
		if e.Date.Before(start) {
			continue
		}
		if e.Date.After(end) {
			break
		}
		out = append(out, e)
	}
	return out
}

// GameCount counts a team's games between start and end inclusive.
func (ix *Index) GameCount(team string, start, end time.Time) int {
	return len(ix.GamesInRange(team, start, end))
}

// TeamsPlayingOn returns the sorted set of teams with a game on the
// given calendar date.
func (ix *Index) TeamsPlayingOn(date time.Time) []string {
	date = DateOf(date)
	out := make([]string, 0, 16)
	for _, team := range ix.teams {
		for _, e := range ix.byTeam[team] {
			if e.Date.Equal(date) {
				out = append(out, team)
				break
			}
			if e.Date.After(date) {
				break
			}
		}
	}
	return out
}

// FirstDate and LastDate bound the season covered by the index. Both are
// zero when the index is empty.
func (ix *Index) FirstDate() time.Time {
	var first time.Time
	for _, games := range ix.byTeam {
		if len(games) == 0 {
			continue
		}
		if first.IsZero() || games[0].Date.Before(first) {
			first = games[0].Date
		}
	}
	return first
}

func (ix *Index) LastDate() time.Time {
	var last time.Time
	for _, games := range ix.byTeam {
		if len(games) == 0 {
			continue
		}
		if d := games[len(games)-1].Date; d.After(last) {
			last = d
		}
	}
	return last
}
