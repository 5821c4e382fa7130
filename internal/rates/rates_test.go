package rates

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleTable() *Table {
	return New([]PlayerRate{
		{Name: "Jalen Green", Team: "HOU", PTS: 21.0},
		{Name: "Jalen Green", Team: "PHX", PTS: 16.5},
		{Name: "Nikola Jokic", Team: "DEN", PTS: 28.7, REB: 12.7, AST: 10.2},
		{Name: "Alperen Sengun", Team: "HOU", PTS: 19.1},
	})
}

func TestResolve(t *testing.T) {
	table := sampleTable()

	t.Run("exact name and team", func(t *testing.T) {
		lk := table.Resolve("Nikola Jokic", "DEN")
		if !lk.Found || lk.TeamChanged {
			t.Fatalf("unexpected lookup %+v", lk)
		}
		if lk.Rate.PTS != 28.7 {
			t.Fatalf("got PTS %v, want 28.7", lk.Rate.PTS)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		lk := table.Resolve("  nikola jokic ", "den")
		if !lk.Found {
			t.Fatalf("unexpected lookup %+v", lk)
		}
	})

	t.Run("team change falls back to unique name", func(t *testing.T) {
		lk := table.Resolve("Alperen Sengun", "SAS")
		if !lk.Found || !lk.TeamChanged {
			t.Fatalf("unexpected lookup %+v", lk)
		}
		if lk.PreviousTeam != "HOU" {
			t.Fatalf("previous team %q, want HOU", lk.PreviousTeam)
		}
	})

	t.Run("same-name players with no team match stay unresolved", func(t *testing.T) {
		lk := table.Resolve("Jalen Green", "BOS")
		if lk.Found {
			t.Fatalf("unexpected lookup %+v", lk)
		}
		if lk.Reason != MissAmbiguous {
			t.Fatalf("reason %q, want %q", lk.Reason, MissAmbiguous)
		}
	})

	t.Run("same-name players with a team match resolve", func(t *testing.T) {
		lk := table.Resolve("Jalen Green", "PHX")
		if !lk.Found || lk.TeamChanged || lk.Rate.PTS != 16.5 {
			t.Fatalf("unexpected lookup %+v", lk)
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		lk := table.Resolve("Nobody Here", "DEN")
		if lk.Found || lk.Reason != MissNotFound {
			t.Fatalf("unexpected lookup %+v", lk)
		}
	})
}

func writeStatsCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "player_stats.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeStatsCSV(t, `Name,Team,PTS,REB,AST,STL,BLK,FGM,FGA,FTM,FTA,3PM,3PA,TO
Nikola Jokic,den,28.7,12.7,10.2,1.4,0.9,10.6,18.3,5.6,6.9,1.2,2.9,3.1
Payton Pritchard,BOS,14.3,3.8,3.5,0.9,0.2,5.1,11.0,1.3,1.5,2.8,6.9,1.2
`)
	table, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Fatalf("got %d rows, want 2", table.Len())
	}
	lk := table.Resolve("Nikola Jokic", "DEN")
	if !lk.Found {
		t.Fatalf("unexpected lookup %+v", lk)
	}
	if lk.Rate.Team != "DEN" {
		t.Fatalf("team not uppercased: %q", lk.Rate.Team)
	}
	if lk.Rate.ThreePM != 1.2 || lk.Rate.TO != 3.1 {
		t.Fatalf("unexpected rates %+v", lk.Rate)
	}
}

func TestLoadCSVMissingStatColumns(t *testing.T) {
	// Missing stat columns default to zero instead of failing the load.
	path := writeStatsCSV(t, "Name,Team,PTS\nSomeone,ATL,12.5\n")
	table, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	lk := table.Resolve("Someone", "ATL")
	if !lk.Found || lk.Rate.PTS != 12.5 || lk.Rate.REB != 0 {
		t.Fatalf("unexpected lookup %+v", lk)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	t.Run("missing name column", func(t *testing.T) {
		path := writeStatsCSV(t, "Team,PTS\nATL,10\n")
		if _, err := LoadCSV(path); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("no rows", func(t *testing.T) {
		path := writeStatsCSV(t, "Name,Team\n")
		if _, err := LoadCSV(path); err == nil {
			t.Fatal("expected error")
		}
	})
}
