package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fba-matchup-mcp/internal/store"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st := store.New(t.TempDir())
	c := NewClient(st, 12345, 2026)
	c.BaseURL = srv.URL
	return c, st
}

func TestFetchViewsWritesThroughStore(t *testing.T) {
	hits := 0
	c, st := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if got := r.URL.Query()["view"]; len(got) != 2 || got[0] != "mMatchup" || got[1] != "mMatchupScore" {
			t.Errorf("unexpected views %v", got)
		}
		w.Write([]byte(`{"scoringPeriodId": 5}`))
	})

	body, err := c.FetchViews([]string{"mMatchup", "mMatchupScore"}, "league/12345/mMatchup.json", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(body) == 0 {
		t.Fatal("empty body")
	}
	if !st.Exists("league/12345/mMatchup.json") {
		t.Fatal("payload not cached")
	}

	// Second read is served from disk.
	if _, err := c.FetchViews([]string{"mMatchup"}, "league/12345/mMatchup.json", false); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Fatalf("got %d network hits, want 1", hits)
	}

	// force bypasses the cache.
	if _, err := c.FetchViews([]string{"mMatchup"}, "league/12345/mMatchup.json", true); err != nil {
		t.Fatal(err)
	}
	if hits != 2 {
		t.Fatalf("got %d network hits, want 2", hits)
	}
}

func TestFetchViewsCookies(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("espn_s2"); err != nil || ck.Value != "s2value" {
			t.Error("missing espn_s2 cookie")
		}
		if ck, err := r.Cookie("SWID"); err != nil || ck.Value != "{SWID}" {
			t.Error("missing SWID cookie")
		}
		w.Write([]byte(`{}`))
	})
	c.ESPNS2 = "s2value"
	c.SWID = "{SWID}"

	if _, err := c.FetchViews([]string{"mSettings"}, "league/12345/mSettings.json", false); err != nil {
		t.Fatal(err)
	}
}

func TestFetchViewsUnauthorized(t *testing.T) {
	c, st := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.FetchViews([]string{"mSettings"}, "league/12345/mSettings.json", false)
	if err == nil {
		t.Fatal("expected auth error")
	}
	if st.Exists("league/12345/mSettings.json") {
		t.Fatal("failed fetch must not be cached")
	}
}

func TestFetchViewsServerError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if _, err := c.FetchViews([]string{"mSettings"}, "league/12345/mSettings.json", false); err == nil {
		t.Fatal("expected error")
	}
}
