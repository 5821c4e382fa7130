// Package projection turns a roster, a schedule index, and a rate table
// into projected stat totals for a date window. Every counting stat is
// per-game rate times remaining games; shooting percentages come from
// summed makes over summed attempts, never from averaging per-player
// percentages.
package projection

import (
	"sort"
	"time"

	"fba-matchup-mcp/internal/rates"
	"fba-matchup-mcp/internal/schedule"
)

// RosterSlot identifies one rostered player.
type RosterSlot struct {
	Name    string `json:"name"`
	ProTeam string `json:"pro_team"`
}

// PlayerProjection is one player's projected line over the window.
type PlayerProjection struct {
	Name           string  `json:"name"`
	Team           string  `json:"team"`
	GamesRemaining int     `json:"games_remaining"`
	TeamChanged    bool    `json:"team_changed,omitempty"`
	PreviousTeam   string  `json:"previous_team,omitempty"`
	PTS            float64 `json:"pts"`
	REB            float64 `json:"reb"`
	AST            float64 `json:"ast"`
	STL            float64 `json:"stl"`
	BLK            float64 `json:"blk"`
	ThreePM        float64 `json:"three_pm"`
	TO             float64 `json:"to"`
	FGM            float64 `json:"fgm"`
	FGA            float64 `json:"fga"`
	FTM            float64 `json:"ftm"`
	FTA            float64 `json:"fta"`
}

// Unresolved records a roster slot that contributed nothing because its
// rate record could not be resolved. It is reported, never swallowed.
type Unresolved struct {
	Name    string `json:"name"`
	ProTeam string `json:"pro_team"`
	Reason  string `json:"reason"`
}

// Totals are the aggregate counting-stat projections.
type Totals struct {
	PTS     float64 `json:"pts"`
	REB     float64 `json:"reb"`
	AST     float64 `json:"ast"`
	STL     float64 `json:"stl"`
	BLK     float64 `json:"blk"`
	ThreePM float64 `json:"three_pm"`
	TO      float64 `json:"to"`
}

// Shooting holds summed makes and attempts; the percentages derive from
// these, not the other way around.
type Shooting struct {
	FGM float64 `json:"fgm"`
	FGA float64 `json:"fga"`
	FTM float64 `json:"ftm"`
	FTA float64 `json:"fta"`
}

// RosterProjection is the full projection result for one roster and
// window. It is a value: recomputed per call, owned by the caller.
type RosterProjection struct {
	Start      time.Time          `json:"start"`
	End        time.Time          `json:"end"`
	TotalGames int                `json:"total_games"`
	Players    []PlayerProjection `json:"players"`
	Unresolved []Unresolved       `json:"unresolved,omitempty"`
	Totals     Totals             `json:"totals"`
	Shooting   Shooting           `json:"shooting"`
	FGPct      float64            `json:"fg_pct"`
	FTPct      float64            `json:"ft_pct"`
}

// Engine projects rosters against a loaded schedule index and rate
// table. Both inputs are read-only; concurrent Project calls are safe.
type Engine struct {
	Schedule *schedule.Index
	Rates    *rates.Table
}

// Project resolves each roster slot, multiplies its per-game rates by
// the team's game count in [start, end], and aggregates. Slots that
// fail resolution land in Unresolved and contribute zero everywhere.
func (e *Engine) Project(roster []RosterSlot, start, end time.Time) RosterProjection {
	out := RosterProjection{
		Start:   schedule.DateOf(start),
		End:     schedule.DateOf(end),
		Players: make([]PlayerProjection, 0, len(roster)),
	}

	for _, slot := range roster {
		lk := e.Rates.Resolve(slot.Name, slot.ProTeam)
		if !lk.Found {
			out.Unresolved = append(out.Unresolved, Unresolved{
				Name:    slot.Name,
				ProTeam: slot.ProTeam,
				Reason:  string(lk.Reason),
			})
			continue
		}

		games := e.Schedule.GameCount(slot.ProTeam, start, end)
		g := float64(games)
		pp := PlayerProjection{
			Name:           lk.Rate.Name,
			Team:           slot.ProTeam,
			GamesRemaining: games,
			TeamChanged:    lk.TeamChanged,
			PreviousTeam:   lk.PreviousTeam,
			PTS:            lk.Rate.PTS * g,
			REB:            lk.Rate.REB * g,
			AST:            lk.Rate.AST * g,
			STL:            lk.Rate.STL * g,
			BLK:            lk.Rate.BLK * g,
			ThreePM:        lk.Rate.ThreePM * g,
			TO:             lk.Rate.TO * g,
			FGM:            lk.Rate.FGM * g,
			FGA:            lk.Rate.FGA * g,
			FTM:            lk.Rate.FTM * g,
			FTA:            lk.Rate.FTA * g,
		}
		out.Players = append(out.Players, pp)

		out.TotalGames += games
		out.Totals.PTS += pp.PTS
		out.Totals.REB += pp.REB
		out.Totals.AST += pp.AST
		out.Totals.STL += pp.STL
		out.Totals.BLK += pp.BLK
		out.Totals.ThreePM += pp.ThreePM
		out.Totals.TO += pp.TO
		out.Shooting.FGM += pp.FGM
		out.Shooting.FGA += pp.FGA
		out.Shooting.FTM += pp.FTM
		out.Shooting.FTA += pp.FTA
	}

	out.FGPct = pct(out.Shooting.FGM, out.Shooting.FGA)
	out.FTPct = pct(out.Shooting.FTM, out.Shooting.FTA)
	return out
}

// pct returns made/attempted as a 0-100 percentage, 0 when attempts are 0.
func pct(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return made / attempted * 100
}

// CategoryDelta maps a scoring-category name to this projection's
// contribution toward it. Counting categories return projected totals;
// FG%/FT% return the aggregate percentage as a fraction, matching how
// the live scoreline expresses percentage values. Unknown categories
// report ok=false and are skipped by callers.
func (p RosterProjection) CategoryDelta(category string) (float64, bool) {
	switch category {
	case "PTS":
		return p.Totals.PTS, true
	case "REB":
		return p.Totals.REB, true
	case "AST":
		return p.Totals.AST, true
	case "STL":
		return p.Totals.STL, true
	case "BLK":
		return p.Totals.BLK, true
	case "3PM":
		return p.Totals.ThreePM, true
	case "TO":
		return p.Totals.TO, true
	case "FGM":
		return p.Shooting.FGM, true
	case "FGA":
		return p.Shooting.FGA, true
	case "FTM":
		return p.Shooting.FTM, true
	case "FTA":
		return p.Shooting.FTA, true
	case "FG%":
		return p.FGPct / 100, true
	case "FT%":
		return p.FTPct / 100, true
	}
	return 0, false
}

// TopPerformers returns the n players with the highest projected points.
func (p RosterProjection) TopPerformers(n int) []PlayerProjection {
	players := make([]PlayerProjection, len(p.Players))
	copy(players, p.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].PTS > players[j].PTS })
	if n > 0 && len(players) > n {
		players = players[:n]
	}
	return players
}

// FantasyPoints applies the points-league weights to projected totals.
func (p RosterProjection) FantasyPoints() float64 {
	t := p.Totals
	return t.PTS*1.0 + t.REB*1.2 + t.AST*1.5 + t.STL*3.0 + t.BLK*3.0 + t.ThreePM*0.5 + t.TO*-1.0
}
