package main

import (
	"fba-matchup-mcp/internal/projection"
)

type RosterProjectionArgs struct {
	TeamID int    `json:"team_id,omitempty" jsonschema:"Fantasy team id (0 = your team)"`
	Start  string `json:"start,omitempty" jsonschema:"Start date YYYY-MM-DD (default today)"`
	End    string `json:"end,omitempty" jsonschema:"End date YYYY-MM-DD (default upcoming Sunday)"`
}

// RosterProjectionOutput is a roster's projected totals plus coverage
// gaps: unresolved players are listed inside the projection rather than
// silently dropped.
type RosterProjectionOutput struct {
	TeamID     int                         `json:"team_id"`
	TeamName   string                      `json:"team_name"`
	Note       string                      `json:"note,omitempty"`
	Projection projection.RosterProjection `json:"projection"`
}

func buildRosterProjection(cfg ServerConfig, args RosterProjectionArgs) (RosterProjectionOutput, error) {
	teamID := args.TeamID
	if teamID == 0 {
		teamID = cfg.TeamID
	}
	start, end, note, err := resolveWindow(args.Start, args.End, cfg.Now())
	if err != nil {
		return RosterProjectionOutput{}, err
	}

	roster, err := cfg.ESPN.Roster(teamID)
	if err != nil {
		return RosterProjectionOutput{}, err
	}

	return RosterProjectionOutput{
		TeamID:     teamID,
		TeamName:   roster.Name,
		Note:       note,
		Projection: cfg.engine().Project(roster.Slots(), start, end),
	}, nil
}
