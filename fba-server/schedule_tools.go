package main

import (
	"fmt"
	"strings"
	"time"

	"fba-matchup-mcp/internal/schedule"
)

type TeamScheduleArgs struct {
	Team  string `json:"team" jsonschema:"Team code, e.g. ATL (required)"`
	Start string `json:"start,omitempty" jsonschema:"Start date YYYY-MM-DD (default today)"`
	End   string `json:"end,omitempty" jsonschema:"End date YYYY-MM-DD (default upcoming Sunday)"`
}

// TeamScheduleOutput lists one team's games in a window with home/away
// and back-to-back context.
type TeamScheduleOutput struct {
	Team          string           `json:"team"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	Note          string           `json:"note,omitempty"`
	Games         []schedule.Entry `json:"games"`
	HomeGames     int              `json:"home_games"`
	AwayGames     int              `json:"away_games"`
	HasBackToBack bool             `json:"has_back_to_back"`
}

func buildTeamSchedule(cfg ServerConfig, args TeamScheduleArgs) (TeamScheduleOutput, error) {
	team := strings.ToUpper(strings.TrimSpace(args.Team))
	if team == "" {
		return TeamScheduleOutput{}, fmt.Errorf("team is required")
	}
	start, end, note, err := resolveWindow(args.Start, args.End, cfg.Now())
	if err != nil {
		return TeamScheduleOutput{}, err
	}

	out := TeamScheduleOutput{Team: team, Start: start, End: end, Note: note}
	out.Games = cfg.Schedule.GamesInRange(team, start, end)
	for _, g := range out.Games {
		if g.Home {
			out.HomeGames++
		} else {
			out.AwayGames++
		}
		if g.BackToBack {
			out.HasBackToBack = true
		}
	}
	return out, nil
}

type TeamsPlayingOnArgs struct {
	Date string `json:"date" jsonschema:"Date YYYY-MM-DD (required)"`
}

type TeamsPlayingOnOutput struct {
	Date  time.Time `json:"date"`
	Teams []string  `json:"teams"`
}

func buildTeamsPlayingOn(cfg ServerConfig, args TeamsPlayingOnArgs) (TeamsPlayingOnOutput, error) {
	if args.Date == "" {
		return TeamsPlayingOnOutput{}, fmt.Errorf("date is required")
	}
	date, err := parseDate(args.Date)
	if err != nil {
		return TeamsPlayingOnOutput{}, err
	}
	return TeamsPlayingOnOutput{Date: date, Teams: cfg.Schedule.TeamsPlayingOn(date)}, nil
}

type WeeklyGameCountsArgs struct {
	WeekStart string `json:"week_start" jsonschema:"Monday of the week YYYY-MM-DD (required; non-Mondays shift back)"`
}

func buildWeeklyGameCounts(cfg ServerConfig, args WeeklyGameCountsArgs) (schedule.WeekCounts, error) {
	if args.WeekStart == "" {
		return schedule.WeekCounts{}, fmt.Errorf("week_start is required")
	}
	weekStart, err := parseDate(args.WeekStart)
	if err != nil {
		return schedule.WeekCounts{}, err
	}
	return cfg.Schedule.WeeklyGameCounts(weekStart), nil
}

type StreamingDaysArgs struct {
	Start string `json:"start,omitempty" jsonschema:"Start date YYYY-MM-DD (default today)"`
	End   string `json:"end,omitempty" jsonschema:"End date YYYY-MM-DD (default upcoming Sunday)"`
}

type StreamingDaysOutput struct {
	Start time.Time           `json:"start"`
	End   time.Time           `json:"end"`
	Note  string              `json:"note,omitempty"`
	Days  []schedule.DaySlate `json:"days"`
}

func buildStreamingDays(cfg ServerConfig, args StreamingDaysArgs) (StreamingDaysOutput, error) {
	start, end, note, err := resolveWindow(args.Start, args.End, cfg.Now())
	if err != nil {
		return StreamingDaysOutput{}, err
	}
	return StreamingDaysOutput{
		Start: start,
		End:   end,
		Note:  note,
		Days:  cfg.Schedule.StreamingDays(start, end),
	}, nil
}

type BestStreamingWeeksArgs struct {
	TopN int `json:"top_n,omitempty" jsonschema:"How many weeks to return (default 10)"`
}

type BestStreamingWeeksOutput struct {
	Weeks []schedule.WeekVolume `json:"weeks"`
}

func buildBestStreamingWeeks(cfg ServerConfig, args BestStreamingWeeksArgs) BestStreamingWeeksOutput {
	n := args.TopN
	if n <= 0 {
		n = 10
	}
	return BestStreamingWeeksOutput{Weeks: cfg.Schedule.BestStreamingWeeks(n)}
}

type SeasonScheduleSummaryArgs struct {
	Team string `json:"team,omitempty" jsonschema:"Limit to one team code"`
}

type SeasonScheduleSummaryOutput struct {
	Teams []schedule.TeamSeasonSummary `json:"teams"`
}

func buildSeasonScheduleSummary(cfg ServerConfig, args SeasonScheduleSummaryArgs) (SeasonScheduleSummaryOutput, error) {
	summary := cfg.Schedule.SeasonSummary()
	team := strings.ToUpper(strings.TrimSpace(args.Team))
	if team == "" {
		return SeasonScheduleSummaryOutput{Teams: summary}, nil
	}
	for _, s := range summary {
		if s.Team == team {
			return SeasonScheduleSummaryOutput{Teams: []schedule.TeamSeasonSummary{s}}, nil
		}
	}
	return SeasonScheduleSummaryOutput{}, fmt.Errorf("team %s not found in schedule data", team)
}
