package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TeamWeekCount is one team's game volume for a Monday-to-Sunday week.
type TeamWeekCount struct {
	Team     string `json:"team"`
	Games    int    `json:"games"`
	GameDays string `json:"game_days"`
}

// WeekCounts is the per-team game-count table for a single week, sorted
// by descending game count then team code.
type WeekCounts struct {
	WeekStart time.Time       `json:"week_start"`
	WeekEnd   time.Time       `json:"week_end"`
	Note      string          `json:"note,omitempty"`
	Teams     []TeamWeekCount `json:"teams"`
}

// NormalizeWeekStart shifts d backward to the Monday of its week. The
// second return reports whether an adjustment happened; callers surface
// it so the shifted window is never silent.
func NormalizeWeekStart(d time.Time) (time.Time, bool) {
	d = DateOf(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	if offset == 0 {
		return d, false
	}
	return d.AddDate(0, 0, -offset), true
}

// WeeklyGameCounts counts games per team for the Monday-to-Sunday week
// containing weekStart. A non-Monday input is normalized backward and
// noted in the result.
func (ix *Index) WeeklyGameCounts(weekStart time.Time) WeekCounts {
	monday, adjusted := NormalizeWeekStart(weekStart)
	sunday := monday.AddDate(0, 0, 6)

	out := WeekCounts{WeekStart: monday, WeekEnd: sunday}
	if adjusted {
		out.Note = fmt.Sprintf("%s is not a Monday; week adjusted to start %s",
			DateOf(weekStart).Format("2006-01-02"), monday.Format("2006-01-02"))
	}

	for _, team := range ix.teams {
		games := ix.GamesInRange(team, monday, sunday)
		if len(games) == 0 {
			continue
		}
		days := make([]string, 0, len(games))
		for _, g := range games {
			days = append(days, g.DayOfWeek)
		}
		out.Teams = append(out.Teams, TeamWeekCount{
			Team:     team,
			Games:    len(games),
			GameDays: strings.Join(days, ", "),
		})
	}
	sort.Slice(out.Teams, func(i, j int) bool {
		if out.Teams[i].Games != out.Teams[j].Games {
			return out.Teams[i].Games > out.Teams[j].Games
		}
		return out.Teams[i].Team < out.Teams[j].Team
	})
	return out
}

// DaySlate lists the teams with a game on one date.
type DaySlate struct {
	Date  time.Time `json:"date"`
	Teams []string  `json:"teams"`
}

// StreamingDays maps each date in [start, end] with at least one game to
// the teams playing that day, in date order. Used to plan pickup/drop
// timing across a week.
func (ix *Index) StreamingDays(start, end time.Time) []DaySlate {
	start, end = DateOf(start), DateOf(end)
	out := make([]DaySlate, 0, 8)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		teams := ix.TeamsPlayingOn(d)
		if len(teams) == 0 {
			continue
		}
		out = append(out, DaySlate{Date: d, Teams: teams})
	}
	return out
}

// WeekBreakdown is one week of the season-long week-by-team game matrix.
type WeekBreakdown struct {
	Week        int            `json:"week"`
	WeekStart   time.Time      `json:"week_start"`
	WeekEnd     time.Time      `json:"week_end"`
	TotalGames  int            `json:"total_games"`
	CountByTeam map[string]int `json:"count_by_team"`
}

// WeeklyBreakdowns splits the whole season into Monday-to-Sunday weeks,
// starting from the Monday of the week containing the first scheduled
// game, and counts games per team for every week.
func (ix *Index) WeeklyBreakdowns() []WeekBreakdown {
	first, last := ix.FirstDate(), ix.LastDate()
	if first.IsZero() {
		return nil
	}
	monday, _ := NormalizeWeekStart(first)

	out := make([]WeekBreakdown, 0, 26)
	week := 1
	for ; !monday.After(last); monday = monday.AddDate(0, 0, 7) {
		sunday := monday.AddDate(0, 0, 6)
		bd := WeekBreakdown{
			Week:        week,
			WeekStart:   monday,
			WeekEnd:     sunday,
			CountByTeam: make(map[string]int, len(ix.teams)),
		}
		for _, team := range ix.teams {
			n := ix.GameCount(team, monday, sunday)
			if n > 0 {
				bd.CountByTeam[team] = n
				bd.TotalGames += n
			}
		}
		out = append(out, bd)
		week++
	}
	return out
}

// TeamSeasonSummary is a team's full-season weekly game-volume profile.
type TeamSeasonSummary struct {
	Team            string  `json:"team"`
	TotalGames      int     `json:"total_games"`
	AvgGamesPerWeek float64 `json:"avg_games_per_week"`
	MaxGamesInWeek  int     `json:"max_games_in_week"`
	MinGamesInWeek  int     `json:"min_games_in_week"`
	GamesByWeek     []int   `json:"games_by_week"`
}

// SeasonSummary transposes WeeklyBreakdowns into per-team rows sorted by
// average games per week, highest first.
func (ix *Index) SeasonSummary() []TeamSeasonSummary {
	weeks := ix.WeeklyBreakdowns()
	if len(weeks) == 0 {
		return nil
	}
	out := make([]TeamSeasonSummary, 0, len(ix.teams))
	for _, team := range ix.teams {
		s := TeamSeasonSummary{Team: team, MinGamesInWeek: -1}
		for _, w := range weeks {
			n := w.CountByTeam[team]
			s.GamesByWeek = append(s.GamesByWeek, n)
			s.TotalGames += n
			if n > s.MaxGamesInWeek {
				s.MaxGamesInWeek = n
			}
			if s.MinGamesInWeek < 0 || n < s.MinGamesInWeek {
				s.MinGamesInWeek = n
			}
		}
		s.AvgGamesPerWeek = float64(s.TotalGames) / float64(len(weeks))
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgGamesPerWeek != out[j].AvgGamesPerWeek {
			return out[i].AvgGamesPerWeek > out[j].AvgGamesPerWeek
		}
		return out[i].Team < out[j].Team
	})
	return out
}

// WeekVolume ranks one week by total scheduled games.
type WeekVolume struct {
	Week       int       `json:"week"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	TotalGames int       `json:"total_games"`
	Teams4Plus int       `json:"teams_4_plus"`
	Teams3     int       `json:"teams_3"`
	Teams2     int       `json:"teams_2"`
}

// BestStreamingWeeks returns the topN weeks with the most games
// scheduled, the weeks where extra roster churn buys the most games.
func (ix *Index) BestStreamingWeeks(topN int) []WeekVolume {
	weeks := ix.WeeklyBreakdowns()
	out := make([]WeekVolume, 0, len(weeks))
	for _, w := range weeks {
		v := WeekVolume{Week: w.Week, WeekStart: w.WeekStart, WeekEnd: w.WeekEnd, TotalGames: w.TotalGames}
		for _, n := range w.CountByTeam {
			switch {
			case n >= 4:
				v.Teams4Plus++
			case n == 3:
				v.Teams3++
			case n == 2:
				v.Teams2++
			}
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGames != out[j].TotalGames {
			return out[i].TotalGames > out[j].TotalGames
		}
		return out[i].Week < out[j].Week
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
