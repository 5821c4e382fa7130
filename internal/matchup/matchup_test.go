package matchup

import (
	"testing"

	"fba-matchup-mcp/internal/projection"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name       string
		yours, opp float64
		isNegative bool
		want       Side
	}{
		{"higher wins positive", 50, 30, false, SideYou},
		{"lower loses positive", 30, 50, false, SideOpp},
		{"lower wins negative", 3, 5, true, SideYou},
		{"higher loses negative", 5, 3, true, SideOpp},
		{"equal positive ties", 4, 4, false, SideTie},
		{"equal negative ties", 4, 4, true, SideTie},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Compare(c.yours, c.opp, c.isNegative); got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}
}

func testCategories() []Category {
	return []Category{
		{StatID: 0, Name: "PTS"},
		{StatID: 6, Name: "REB"},
		{StatID: 3, Name: "AST"},
		{StatID: 11, Name: "TO", IsNegative: true},
	}
}

func TestReconcile(t *testing.T) {
	yours := map[int]float64{0: 250, 6: 90, 3: 55, 11: 20}
	opp := map[int]float64{0: 240, 6: 100, 3: 55, 11: 25}

	t.Run("upstream counters trusted when present", func(t *testing.T) {
		s := Reconcile(5, 1, 2, testCategories(), yours, opp, 4, 5)
		if s.Won != 4 || s.Lost != 5 || s.CounterFallback {
			t.Fatalf("unexpected scoreline %+v", s)
		}
		if s.Winning {
			t.Fatal("4-5 should not read as winning")
		}
	})

	t.Run("degenerate counters replaced by local record", func(t *testing.T) {
		s := Reconcile(5, 1, 2, testCategories(), yours, opp, 0, 0)
		if !s.CounterFallback {
			t.Fatal("expected counter fallback")
		}
		// PTS won, REB lost, AST tied, TO won (lower turnovers).
		if s.Won != 2 || s.Lost != 1 || s.Tied != 1 {
			t.Fatalf("record %d-%d-%d, want 2-1-1", s.Won, s.Lost, s.Tied)
		}
		if !s.Winning {
			t.Fatal("2-1 should read as winning")
		}
	})

	t.Run("winners computed from raw values regardless of counters", func(t *testing.T) {
		s := Reconcile(5, 1, 2, testCategories(), yours, opp, 4, 5)
		byName := map[string]Side{}
		for _, cs := range s.Categories {
			byName[cs.Category] = cs.Winner
		}
		want := map[string]Side{"PTS": SideYou, "REB": SideOpp, "AST": SideTie, "TO": SideYou}
		for name, side := range want {
			if byName[name] != side {
				t.Errorf("%s winner %s, want %s", name, byName[name], side)
			}
		}
	})
}

func TestProjectFinal(t *testing.T) {
	cats := []Category{
		{StatID: 0, Name: "PTS"},
		{StatID: 11, Name: "TO", IsNegative: true},
		{StatID: 19, Name: "FG%"},
		{StatID: 99, Name: "EJ"}, // no projection mapping
	}
	yours := map[int]float64{0: 200, 11: 18, 19: 0.480}
	opp := map[int]float64{0: 240, 11: 20, 19: 0.500}
	s := Reconcile(3, 1, 2, cats, yours, opp, 0, 0)

	proj := projection.RosterProjection{
		Totals:   projection.Totals{PTS: 50, TO: 2},
		Shooting: projection.Shooting{FGM: 16, FGA: 32},
		FGPct:    50,
	}
	rec := ProjectFinal(s, proj)

	// EJ has no mapping and is skipped entirely.
	if len(rec.Categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(rec.Categories))
	}
	byName := map[string]ProjectedCategory{}
	for _, pc := range rec.Categories {
		byName[pc.Category] = pc
	}

	// 200 + 50 = 250 > 240: flips to a win.
	if pc := byName["PTS"]; !pc.Win || pc.ProjectedYours != 250 {
		t.Fatalf("unexpected PTS %+v", pc)
	}
	// Turnovers accumulate against you: 18 + 2 = 20 ties the opponent,
	// and a projected tie counts as a loss.
	if pc := byName["TO"]; pc.Win {
		t.Fatalf("projected tie must count as loss, got %+v", pc)
	}
	// FG% delta is the aggregate fraction: 0.480 + 0.5 clears 0.500.
	if pc := byName["FG%"]; !pc.Win || pc.ProjectedYours != 0.980 {
		t.Fatalf("unexpected FG%% %+v", pc)
	}

	if rec.Wins != 2 || rec.Losses != 1 {
		t.Fatalf("record %d-%d, want 2-1", rec.Wins, rec.Losses)
	}
}

func TestProjectFinalOpponentHeldConstant(t *testing.T) {
	cats := []Category{{StatID: 0, Name: "PTS"}}
	s := Reconcile(1, 1, 2, cats, map[int]float64{0: 100}, map[int]float64{0: 100}, 0, 0)
	rec := ProjectFinal(s, projection.RosterProjection{Totals: projection.Totals{PTS: 0.001}})
	if len(rec.Categories) != 1 || rec.Categories[0].CurrentOpp != 100 {
		t.Fatalf("unexpected record %+v", rec)
	}
	// Any positive delta breaks a current tie against a frozen opponent.
	if !rec.Categories[0].Win {
		t.Fatal("expected win")
	}
}
