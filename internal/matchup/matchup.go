// Package matchup reconciles a live head-to-head category scoreline
// with roster projections. Winners are always computed from the raw
// per-category values; the upstream "categories won" counter is only
// trusted when it is not degenerate.
package matchup

import (
	"fba-matchup-mcp/internal/projection"
)

// Side is the winner of a category comparison.
type Side string

const (
	SideYou Side = "YOU"
	SideOpp Side = "OPP"
	SideTie Side = "TIE"
)

// Category is one scoring category from league configuration.
// IsNegative means a lower cumulative value wins (turnovers).
type Category struct {
	StatID     int    `json:"stat_id"`
	Name       string `json:"name"`
	IsNegative bool   `json:"is_negative"`
}

// CategoryScore is the live state of one category in a matchup.
type CategoryScore struct {
	Category   string  `json:"category"`
	StatID     int     `json:"stat_id"`
	YourValue  float64 `json:"your_value"`
	OppValue   float64 `json:"opp_value"`
	Winner     Side    `json:"winner"`
	IsNegative bool    `json:"is_negative"`
}

// Scoreline is the reconciled current state of a matchup.
// CounterFallback reports that the upstream aggregate win counts were
// 0-0 and were replaced with the locally computed record.
type Scoreline struct {
	Week            int             `json:"week"`
	YourTeamID      int             `json:"your_team_id"`
	OpponentTeamID  int             `json:"opponent_team_id"`
	Won             int             `json:"categories_won"`
	Lost            int             `json:"categories_lost"`
	Tied            int             `json:"categories_tied"`
	Winning         bool            `json:"is_winning"`
	CounterFallback bool            `json:"counter_fallback,omitempty"`
	Categories      []CategoryScore `json:"category_breakdown"`
}

// Compare applies the orientation-aware winner rule to a single
// category: lower wins when isNegative, higher wins otherwise, equal is
// a tie.
func Compare(yours, opp float64, isNegative bool) Side {
	if isNegative {
		switch {
		case yours < opp:
			return SideYou
		case opp < yours:
			return SideOpp
		}
		return SideTie
	}
	switch {
	case yours > opp:
		return SideYou
	case opp > yours:
		return SideOpp
	}
	return SideTie
}

// Reconcile builds the current scoreline for a matchup from raw
// per-category values keyed by stat id. upstreamWon/upstreamLost are
// the aggregate counters reported by the league source; when both are
// exactly zero they are replaced by the locally computed record, and
// the fallback is noted.
func Reconcile(week, yourTeamID, oppTeamID int, cats []Category, yourVals, oppVals map[int]float64, upstreamWon, upstreamLost int) Scoreline {
	s := Scoreline{
		Week:           week,
		YourTeamID:     yourTeamID,
		OpponentTeamID: oppTeamID,
		Categories:     make([]CategoryScore, 0, len(cats)),
	}

	localWon, localLost := 0, 0
	for _, cat := range cats {
		cs := CategoryScore{
			Category:   cat.Name,
			StatID:     cat.StatID,
			YourValue:  yourVals[cat.StatID],
			OppValue:   oppVals[cat.StatID],
			IsNegative: cat.IsNegative,
		}
		cs.Winner = Compare(cs.YourValue, cs.OppValue, cat.IsNegative)
		switch cs.Winner {
		case SideYou:
			localWon++
		case SideOpp:
			localLost++
		case SideTie:
			s.Tied++
		}
		s.Categories = append(s.Categories, cs)
	}

	s.Won, s.Lost = upstreamWon, upstreamLost
	if upstreamWon == 0 && upstreamLost == 0 {
		s.Won, s.Lost = localWon, localLost
		s.CounterFallback = true
	}
	s.Winning = s.Won > s.Lost
	return s
}

// ProjectedCategory is one category's projected-final outcome.
type ProjectedCategory struct {
	Category       string  `json:"category"`
	CurrentYours   float64 `json:"current_yours"`
	CurrentOpp     float64 `json:"current_opp"`
	ProjectedYours float64 `json:"projected_yours"`
	Win            bool    `json:"win"`
}

// ProjectedRecord is the projected final category record. There is no
// tie state here: an exact tie after projection counts as a loss.
type ProjectedRecord struct {
	Wins       int                 `json:"wins"`
	Losses     int                 `json:"losses"`
	Categories []ProjectedCategory `json:"categories"`
}

// ProjectFinal adds the roster projection's per-category delta to the
// current value and re-runs the winner rule against the opponent's
// current value, which is held constant — the opponent is not
// reprojected. Categories with no projection mapping are skipped.
func ProjectFinal(s Scoreline, proj projection.RosterProjection) ProjectedRecord {
	rec := ProjectedRecord{Categories: make([]ProjectedCategory, 0, len(s.Categories))}
	for _, cs := range s.Categories {
		delta, ok := proj.CategoryDelta(cs.Category)
		if !ok {
			continue
		}
		pc := ProjectedCategory{
			Category:       cs.Category,
			CurrentYours:   cs.YourValue,
			CurrentOpp:     cs.OppValue,
			ProjectedYours: cs.YourValue + delta,
		}
		pc.Win = Compare(pc.ProjectedYours, pc.CurrentOpp, cs.IsNegative) == SideYou
		if pc.Win {
			rec.Wins++
		} else {
			rec.Losses++
		}
		rec.Categories = append(rec.Categories, pc)
	}
	return rec
}
