// Package rates holds season per-game statistical rates for every
// player, keyed by name and pro team. Rates are treated as constant over
// a projection window; there is no opponent or injury adjustment.
package rates

import (
	"strings"
)

// PlayerRate is one player's season per-game averages.
type PlayerRate struct {
	Name    string  `json:"name"`
	Team    string  `json:"team"`
	PTS     float64 `json:"pts"`
	REB     float64 `json:"reb"`
	AST     float64 `json:"ast"`
	STL     float64 `json:"stl"`
	BLK     float64 `json:"blk"`
	FGM     float64 `json:"fgm"`
	FGA     float64 `json:"fga"`
	FTM     float64 `json:"ftm"`
	FTA     float64 `json:"fta"`
	ThreePM float64 `json:"three_pm"`
	ThreePA float64 `json:"three_pa"`
	TO      float64 `json:"to"`
}

// MissReason explains a failed lookup.
type MissReason string

const (
	MissNone      MissReason = ""
	MissNotFound  MissReason = "no stats record for player"
	MissAmbiguous MissReason = "multiple players share this name and none match the roster team"
)

// Lookup is the outcome of resolving a roster slot against the table.
// TeamChanged is set when the rate record was matched by name only,
// which usually means a mid-season trade.
type Lookup struct {
	Rate         PlayerRate
	Found        bool
	TeamChanged  bool
	PreviousTeam string
	Reason       MissReason
}

// Table is an immutable in-memory rate table. Build it once with New or
// LoadCSV; lookups are safe for concurrent use afterwards.
type Table struct {
	rows   []PlayerRate
	byName map[string][]int
}

// New indexes the given rate records by lowercased name.
func New(rows []PlayerRate) *Table {
	t := &Table{rows: rows, byName: make(map[string][]int, len(rows))}
	for i, r := range rows {
		key := nameKey(r.Name)
		t.byName[key] = append(t.byName[key], i)
	}
	return t
}

// Len returns the number of rate records.
func (t *Table) Len() int { return len(t.rows) }

// Resolve looks a player up by name and pro team. Exact
// case-insensitive name+team match wins; otherwise a unique name-only
// match is accepted and flagged as a team change; zero or several
// name-only matches come back not found with a reason — the table never
// guesses between same-named players.
func (t *Table) Resolve(name, proTeam string) Lookup {
	idxs := t.byName[nameKey(name)]
	if len(idxs) == 0 {
		return Lookup{Reason: MissNotFound}
	}

	team := strings.ToUpper(strings.TrimSpace(proTeam))
	for _, i := range idxs {
		if strings.EqualFold(t.rows[i].Team, team) {
			return Lookup{Rate: t.rows[i], Found: true}
		}
	}

	if len(idxs) == 1 {
		r := t.rows[idxs[0]]
		return Lookup{Rate: r, Found: true, TeamChanged: true, PreviousTeam: r.Team}
	}
	return Lookup{Reason: MissAmbiguous}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
