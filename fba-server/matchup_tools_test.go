package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fba-matchup-mcp/internal/espn"
	"fba-matchup-mcp/internal/rates"
	"fba-matchup-mcp/internal/schedule"
	"fba-matchup-mcp/internal/store"
)

// matchupConfig builds an offline config: league payloads on disk, no
// fetch client, a two-team schedule, and rate records for both rosters.
func matchupConfig(t *testing.T) ServerConfig {
	t.Helper()

	st := store.New(t.TempDir())
	writeFixture(t, st, "mSettings", `{
		"settings": {
			"name": "Test League",
			"size": 10,
			"scoringSettings": {
				"scoringType": "H2H_CATEGORY",
				"scoringItems": [
					{"statId": 0},
					{"statId": 11, "isReverseItem": true}
				]
			}
		}
	}`)
	writeFixture(t, st, "mRoster", `{
		"teams": [
			{
				"id": 3,
				"name": "My Team",
				"roster": {"entries": [
					{"playerPoolEntry": {"player": {"id": 1, "fullName": "Nikola Jokic", "proTeamId": 7}}}
				]}
			},
			{
				"id": 7,
				"name": "Their Team",
				"roster": {"entries": [
					{"playerPoolEntry": {"player": {"id": 2, "fullName": "Jayson Tatum", "proTeamId": 2}}}
				]}
			}
		]
	}`)
	writeFixture(t, st, "mMatchup", `{
		"scoringPeriodId": 5,
		"schedule": [
			{
				"matchupPeriodId": 5,
				"home": {
					"teamId": 3,
					"totalPoints": 0,
					"cumulativeScore": {"scoreByStat": {"0": {"score": 200.0}, "11": {"score": 18.0}}}
				},
				"away": {
					"teamId": 7,
					"totalPoints": 0,
					"cumulativeScore": {"scoreByStat": {"0": {"score": 240.0}, "11": {"score": 20.0}}}
				}
			}
		]
	}`)

	ix, err := schedule.NewIndex([]schedule.Entry{
		{Team: "DEN", Date: day("2025-11-05")},
		{Team: "DEN", Date: day("2025-11-07")},
		{Team: "BOS", Date: day("2025-11-06")},
	})
	if err != nil {
		t.Fatal(err)
	}
	table := rates.New([]rates.PlayerRate{
		{Name: "Nikola Jokic", Team: "DEN", PTS: 30, TO: 3},
		{Name: "Jayson Tatum", Team: "BOS", PTS: 27, TO: 2.5},
	})

	return ServerConfig{
		Schedule: ix,
		Rates:    table,
		ESPN:     &espn.Adapter{Store: st, LeagueID: 12345},
		TeamID:   3,
		Now:      func() time.Time { return day("2025-11-05") },
	}
}

func writeFixture(t *testing.T, st *store.Store, view, payload string) {
	t.Helper()
	path := st.Path(fmt.Sprintf("league/12345/%s.json", view))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildMatchupAnalysis(t *testing.T) {
	cfg := matchupConfig(t)

	out, err := buildMatchupAnalysis(cfg, MatchupAnalysisArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.NoMatchup {
		t.Fatal("matchup should be found")
	}
	if out.Week != 5 || out.ScoringType != espn.ScoringCategory {
		t.Fatalf("week %d scoring %q", out.Week, out.ScoringType)
	}

	s := out.Scoreline
	if s == nil {
		t.Fatal("missing scoreline")
	}
	// 0-0 upstream counters give way to the local record: trailing in
	// points, ahead on turnovers.
	if !s.CounterFallback || s.Won != 1 || s.Lost != 1 {
		t.Fatalf("unexpected scoreline %+v", s)
	}

	// Jokic plays twice in the window: +60 PTS, +6 TO.
	rec := out.ProjectedRecord
	if rec == nil {
		t.Fatal("missing projected record")
	}
	// 200+60=260 beats 240; 18+6=24 loses to 20.
	if rec.Wins != 1 || rec.Losses != 1 {
		t.Fatalf("projected record %d-%d, want 1-1", rec.Wins, rec.Losses)
	}

	if len(out.TopPerformers) != 1 || out.TopPerformers[0].Name != "Nikola Jokic" {
		t.Fatalf("unexpected top performers %+v", out.TopPerformers)
	}
}

func TestBuildMatchupAnalysisNoMatchup(t *testing.T) {
	cfg := matchupConfig(t)
	out, err := buildMatchupAnalysis(cfg, MatchupAnalysisArgs{Week: 9})
	if err != nil {
		t.Fatal(err)
	}
	if !out.NoMatchup || out.Week != 9 {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestBuildMatchupComparison(t *testing.T) {
	cfg := matchupConfig(t)

	out, err := buildMatchupComparison(cfg, MatchupComparisonArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if out.NoMatchup {
		t.Fatal("matchup should be found")
	}
	if out.You == nil || out.Opponent == nil {
		t.Fatal("missing sides")
	}
	if out.You.TeamName != "My Team" || out.Opponent.TeamName != "Their Team" {
		t.Fatalf("names %q vs %q", out.You.TeamName, out.Opponent.TeamName)
	}
	// Jokic has 2 games, Tatum 1.
	if out.You.Games != 2 || out.Opponent.Games != 1 {
		t.Fatalf("games %d vs %d, want 2 vs 1", out.You.Games, out.Opponent.Games)
	}

	if len(out.Edges) == 0 {
		t.Fatal("category league should produce edges")
	}
	edges := map[string]CategoryEdge{}
	for _, e := range out.Edges {
		edges[e.Category] = e
	}
	// 60 projected points beats 27.
	if e := edges["PTS"]; e.Edge != "you" {
		t.Fatalf("unexpected PTS edge %+v", e)
	}
	// 6 projected turnovers loses to 2.5; lower wins.
	if e := edges["TO"]; e.Edge != "opponent" {
		t.Fatalf("unexpected TO edge %+v", e)
	}
}
