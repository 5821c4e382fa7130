// Package espn adapts raw ESPN fantasy league payloads into the
// normalized types the analysis core consumes. The core never sees the
// heterogeneous payload shapes; it gets category lists, rosters, and
// stat-id keyed scorelines.
package espn

import (
	"encoding/json"
	"fmt"
	"strings"

	"fba-matchup-mcp/internal/fetch"
	"fba-matchup-mcp/internal/matchup"
	"fba-matchup-mcp/internal/projection"
	"fba-matchup-mcp/internal/store"
)

// League scoring formats, after normalizing ESPN's enum values.
const (
	ScoringCategory = "H2H Category"
	ScoringPoints   = "Points"
)

// Adapter reads league views from the raw store, fetching them through
// the client when one is wired and the file is missing.
type Adapter struct {
	Store    *store.Store
	Fetch    *fetch.Client // nil = offline, disk only
	LeagueID int
}

// LeagueInfo is the league configuration the tools care about.
type LeagueInfo struct {
	Name             string             `json:"name"`
	Size             int                `json:"size"`
	ScoringType      string             `json:"scoring_type"`
	Categories       []matchup.Category `json:"categories,omitempty"`
	AcquisitionLimit int                `json:"acquisition_limit"`
}

// RosterEntry is one rostered player with the pro-team id already
// resolved to a schedule team code.
type RosterEntry struct {
	PlayerID     int    `json:"player_id"`
	Name         string `json:"name"`
	ProTeamID    int    `json:"pro_team_id"`
	ProTeam      string `json:"pro_team"`
	LineupSlot   int    `json:"lineup_slot"`
	InjuryStatus string `json:"injury_status,omitempty"`
}

// TeamRoster is one fantasy team's roster.
type TeamRoster struct {
	TeamID  int           `json:"team_id"`
	Name    string        `json:"name"`
	Owner   string        `json:"owner,omitempty"`
	Entries []RosterEntry `json:"entries"`
}

// Slots converts the roster into projection input.
func (r TeamRoster) Slots() []projection.RosterSlot {
	slots := make([]projection.RosterSlot, 0, len(r.Entries))
	for _, e := range r.Entries {
		slots = append(slots, projection.RosterSlot{Name: e.Name, ProTeam: e.ProTeam})
	}
	return slots
}

// MatchupScores is one side's view of a live matchup, normalized to
// stat-id keyed values. Counters are the upstream aggregate category
// counts, which the reconciler treats as untrusted when degenerate.
type MatchupScores struct {
	Week           int
	YourTeamID     int
	OpponentTeamID int
	YourValues     map[int]float64
	OppValues      map[int]float64
	YourCounter    int
	OppCounter     int
	YourPoints     float64
	OppPoints      float64
}

func (a *Adapter) view(name string, views []string) ([]byte, error) {
	rel := fmt.Sprintf("league/%d/%s.json", a.LeagueID, name)
	if a.Fetch != nil {
		return a.Fetch.FetchViews(views, rel, false)
	}
	return a.Store.Read(rel)
}

// LeagueInfo reads league settings and normalizes the scoring type.
// A league with scoring items is a category league regardless of what
// the scoringType enum claims.
func (a *Adapter) LeagueInfo() (LeagueInfo, error) {
	raw, err := a.view("mSettings", []string{"mSettings"})
	if err != nil {
		return LeagueInfo{}, fmt.Errorf("league settings: %w", err)
	}
	var resp settingsRaw
	if err := json.Unmarshal(raw, &resp); err != nil {
		return LeagueInfo{}, fmt.Errorf("parse league settings: %w", err)
	}

	info := LeagueInfo{
		Name:             resp.Settings.Name,
		Size:             resp.Settings.Size,
		AcquisitionLimit: resp.Settings.AcquisitionSettings.AcquisitionLimit,
	}

	st := strings.ToUpper(resp.Settings.ScoringSettings.ScoringType)
	switch {
	case strings.Contains(st, "CATEGORY"):
		info.ScoringType = ScoringCategory
	case strings.Contains(st, "POINTS"):
		info.ScoringType = ScoringPoints
	default:
		info.ScoringType = resp.Settings.ScoringSettings.ScoringType
	}

	for _, item := range resp.Settings.ScoringSettings.ScoringItems {
		info.Categories = append(info.Categories, matchup.Category{
			StatID:     item.StatID,
			Name:       StatName(item.StatID),
			IsNegative: item.IsReverseItem,
		})
	}
	if len(info.Categories) > 0 {
		info.ScoringType = ScoringCategory
	}
	return info, nil
}

// Roster returns the roster for one fantasy team.
func (a *Adapter) Roster(teamID int) (TeamRoster, error) {
	raw, err := a.view("mRoster", []string{"mRoster"})
	if err != nil {
		return TeamRoster{}, fmt.Errorf("league rosters: %w", err)
	}
	var resp rosterRaw
	if err := json.Unmarshal(raw, &resp); err != nil {
		return TeamRoster{}, fmt.Errorf("parse league rosters: %w", err)
	}

	for _, t := range resp.Teams {
		if t.ID != teamID {
			continue
		}
		out := TeamRoster{TeamID: t.ID, Name: t.Name, Owner: t.PrimaryOwner}
		if out.Name == "" {
			out.Name = t.Abbrev
		}
		for _, e := range t.Roster.Entries {
			p := e.PlayerPoolEntry.Player
			out.Entries = append(out.Entries, RosterEntry{
				PlayerID:     p.ID,
				Name:         p.FullName,
				ProTeamID:    p.ProTeamID,
				ProTeam:      ProTeamAbbr(p.ProTeamID),
				LineupSlot:   e.LineupSlotID,
				InjuryStatus: p.InjuryStatus,
			})
		}
		return out, nil
	}
	return TeamRoster{}, fmt.Errorf("team %d not found in league %d", teamID, a.LeagueID)
}

// MatchupScores finds teamID's matchup for the given period (0 = the
// payload's current scoring period). The second return is false when no
// matchup involves the team that period — a valid terminal state, not
// an error.
func (a *Adapter) MatchupScores(teamID, week int) (MatchupScores, bool, error) {
	raw, err := a.view("mMatchup", []string{"mMatchup", "mMatchupScore"})
	if err != nil {
		return MatchupScores{}, false, fmt.Errorf("league matchups: %w", err)
	}
	var resp matchupRaw
	if err := json.Unmarshal(raw, &resp); err != nil {
		return MatchupScores{}, false, fmt.Errorf("parse league matchups: %w", err)
	}

	period := week
	if period == 0 {
		period = resp.ScoringPeriodID
	}

	for _, m := range resp.Schedule {
		if m.MatchupPeriodID != period {
			continue
		}
		if m.Home.TeamID != teamID && m.Away.TeamID != teamID {
			continue
		}
		yours, opp := m.Home, m.Away
		if m.Away.TeamID == teamID {
			yours, opp = m.Away, m.Home
		}
		return MatchupScores{
			Week:           period,
			YourTeamID:     yours.TeamID,
			OpponentTeamID: opp.TeamID,
			YourValues:     yours.CumulativeScore.Values(),
			OppValues:      opp.CumulativeScore.Values(),
			YourCounter:    yours.CumulativeScore.Wins,
			OppCounter:     opp.CumulativeScore.Wins,
			YourPoints:     yours.TotalPoints,
			OppPoints:      opp.TotalPoints,
		}, true, nil
	}
	return MatchupScores{}, false, nil
}
