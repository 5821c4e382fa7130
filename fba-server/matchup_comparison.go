package main

import (
	"time"

	"fba-matchup-mcp/internal/espn"
	"fba-matchup-mcp/internal/projection"
)

type MatchupComparisonArgs struct {
	Week  int    `json:"week,omitempty" jsonschema:"Matchup period (0 = current)"`
	Start string `json:"start,omitempty" jsonschema:"Projection start YYYY-MM-DD (default today)"`
	End   string `json:"end,omitempty" jsonschema:"Projection end YYYY-MM-DD (default upcoming Sunday)"`
}

// ComparisonSide is one team's half of a side-by-side projection.
type ComparisonSide struct {
	TeamID     int                         `json:"team_id"`
	TeamName   string                      `json:"team_name"`
	Games      int                         `json:"games"`
	Projection projection.RosterProjection `json:"projection"`
	FantasyPts float64                     `json:"fantasy_points,omitempty"`
}

// CategoryEdge compares projected rest-of-window production in one
// counting category. FG% and FT% are compared on the aggregate
// percentages, not per-player averages.
type CategoryEdge struct {
	Category string  `json:"category"`
	You      float64 `json:"you"`
	Opponent float64 `json:"opponent"`
	Edge     string  `json:"edge"`
}

type MatchupComparisonOutput struct {
	NoMatchup   bool   `json:"no_matchup,omitempty"`
	Week        int    `json:"week,omitempty"`
	ScoringType string `json:"scoring_type,omitempty"`

	You      *ComparisonSide `json:"you,omitempty"`
	Opponent *ComparisonSide `json:"opponent,omitempty"`
	Edges    []CategoryEdge  `json:"edges,omitempty"`

	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Note        string    `json:"note,omitempty"`
}

var comparisonCategories = []struct {
	name       string
	isNegative bool
	value      func(projection.RosterProjection) float64
}{
	{"PTS", false, func(p projection.RosterProjection) float64 { return p.Totals.PTS }},
	{"REB", false, func(p projection.RosterProjection) float64 { return p.Totals.REB }},
	{"AST", false, func(p projection.RosterProjection) float64 { return p.Totals.AST }},
	{"STL", false, func(p projection.RosterProjection) float64 { return p.Totals.STL }},
	{"BLK", false, func(p projection.RosterProjection) float64 { return p.Totals.BLK }},
	{"3PM", false, func(p projection.RosterProjection) float64 { return p.Totals.ThreePM }},
	{"TO", true, func(p projection.RosterProjection) float64 { return p.Totals.TO }},
	{"FG%", false, func(p projection.RosterProjection) float64 { return p.FGPct }},
	{"FT%", false, func(p projection.RosterProjection) float64 { return p.FTPct }},
}

func buildMatchupComparison(cfg ServerConfig, args MatchupComparisonArgs) (MatchupComparisonOutput, error) {
	info, err := cfg.ESPN.LeagueInfo()
	if err != nil {
		return MatchupComparisonOutput{}, err
	}

	scores, found, err := cfg.ESPN.MatchupScores(cfg.TeamID, args.Week)
	if err != nil {
		return MatchupComparisonOutput{}, err
	}
	if !found {
		return MatchupComparisonOutput{NoMatchup: true, Week: args.Week}, nil
	}

	start, end, note, err := resolveWindow(args.Start, args.End, cfg.Now())
	if err != nil {
		return MatchupComparisonOutput{}, err
	}

	you, err := comparisonSide(cfg, scores.YourTeamID, start, end, info.ScoringType)
	if err != nil {
		return MatchupComparisonOutput{}, err
	}
	opp, err := comparisonSide(cfg, scores.OpponentTeamID, start, end, info.ScoringType)
	if err != nil {
		return MatchupComparisonOutput{}, err
	}

	out := MatchupComparisonOutput{
		Week:        scores.Week,
		ScoringType: info.ScoringType,
		You:         you,
		Opponent:    opp,
		WindowStart: start,
		WindowEnd:   end,
		Note:        note,
	}
	if info.ScoringType == espn.ScoringCategory {
		out.Edges = categoryEdges(you.Projection, opp.Projection)
	}
	return out, nil
}

func comparisonSide(cfg ServerConfig, teamID int, start, end time.Time, scoringType string) (*ComparisonSide, error) {
	roster, err := cfg.ESPN.Roster(teamID)
	if err != nil {
		return nil, err
	}
	proj := cfg.engine().Project(roster.Slots(), start, end)
	side := &ComparisonSide{
		TeamID:     teamID,
		TeamName:   roster.Name,
		Games:      proj.TotalGames,
		Projection: proj,
	}
	if scoringType != espn.ScoringCategory {
		side.FantasyPts = proj.FantasyPoints()
	}
	return side, nil
}

func categoryEdges(you, opp projection.RosterProjection) []CategoryEdge {
	edges := make([]CategoryEdge, 0, len(comparisonCategories))
	for _, c := range comparisonCategories {
		yv, ov := c.value(you), c.value(opp)
		edge := "even"
		switch {
		case yv == ov:
		case (yv > ov) != c.isNegative:
			edge = "you"
		default:
			edge = "opponent"
		}
		edges = append(edges, CategoryEdge{Category: c.name, You: yv, Opponent: ov, Edge: edge})
	}
	return edges
}
