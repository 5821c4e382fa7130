package main

import (
	"time"

	"fba-matchup-mcp/internal/espn"
	"fba-matchup-mcp/internal/matchup"
	"fba-matchup-mcp/internal/projection"
)

type MatchupAnalysisArgs struct {
	Week  int    `json:"week,omitempty" jsonschema:"Matchup period (0 = current)"`
	Start string `json:"start,omitempty" jsonschema:"Projection start YYYY-MM-DD (default today)"`
	End   string `json:"end,omitempty" jsonschema:"Projection end YYYY-MM-DD (default upcoming Sunday)"`
}

// MatchupAnalysisOutput is the full picture of one live matchup: the
// reconciled current scoreline, this roster's rest-of-week projection,
// and the projected final category record. NoMatchup=true is a valid
// terminal result meaning there is nothing to analyze for the period.
type MatchupAnalysisOutput struct {
	NoMatchup   bool   `json:"no_matchup,omitempty"`
	Week        int    `json:"week,omitempty"`
	ScoringType string `json:"scoring_type,omitempty"`

	Scoreline       *matchup.Scoreline             `json:"scoreline,omitempty"`
	Projection      *projection.RosterProjection   `json:"projection,omitempty"`
	ProjectedRecord *matchup.ProjectedRecord       `json:"projected_record,omitempty"`
	TopPerformers   []projection.PlayerProjection  `json:"top_performers,omitempty"`

	// Points-league fields, used when the league is not a category league.
	YourPoints          float64 `json:"your_points,omitempty"`
	OpponentPoints      float64 `json:"opponent_points,omitempty"`
	PointDifferential   float64 `json:"point_differential,omitempty"`
	ProjectedFantasyPts float64 `json:"projected_fantasy_points,omitempty"`

	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Note        string    `json:"note,omitempty"`
}

func buildMatchupAnalysis(cfg ServerConfig, args MatchupAnalysisArgs) (MatchupAnalysisOutput, error) {
	info, err := cfg.ESPN.LeagueInfo()
	if err != nil {
		return MatchupAnalysisOutput{}, err
	}

	scores, found, err := cfg.ESPN.MatchupScores(cfg.TeamID, args.Week)
	if err != nil {
		return MatchupAnalysisOutput{}, err
	}
	if !found {
		return MatchupAnalysisOutput{NoMatchup: true, Week: args.Week}, nil
	}

	start, end, note, err := resolveWindow(args.Start, args.End, cfg.Now())
	if err != nil {
		return MatchupAnalysisOutput{}, err
	}

	roster, err := cfg.ESPN.Roster(cfg.TeamID)
	if err != nil {
		return MatchupAnalysisOutput{}, err
	}
	proj := cfg.engine().Project(roster.Slots(), start, end)

	out := MatchupAnalysisOutput{
		Week:        scores.Week,
		ScoringType: info.ScoringType,
		Projection:  &proj,
		WindowStart: start,
		WindowEnd:   end,
		Note:        note,
	}
	out.TopPerformers = proj.TopPerformers(5)

	if info.ScoringType == espn.ScoringCategory {
		sl := matchup.Reconcile(scores.Week, scores.YourTeamID, scores.OpponentTeamID,
			info.Categories, scores.YourValues, scores.OppValues,
			scores.YourCounter, scores.OppCounter)
		rec := matchup.ProjectFinal(sl, proj)
		out.Scoreline = &sl
		out.ProjectedRecord = &rec
		return out, nil
	}

	out.YourPoints = scores.YourPoints
	out.OpponentPoints = scores.OppPoints
	out.PointDifferential = scores.YourPoints - scores.OppPoints
	out.ProjectedFantasyPts = proj.FantasyPoints()
	return out, nil
}
