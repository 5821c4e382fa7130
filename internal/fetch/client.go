// Package fetch downloads ESPN fantasy league views and writes them
// through the raw store. Reads are cache-first: a view already on disk
// is served from disk unless the caller forces a refresh.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fba-matchup-mcp/internal/store"
)

// Client talks to the ESPN fantasy v3 API for one league and season.
// ESPNS2 and SWID are the two session cookies a private league needs;
// both empty is fine for public leagues.
type Client struct {
	HTTP      *http.Client
	Store     *store.Store
	BaseURL   string
	UserAgent string
	LeagueID  int
	Year      int
	ESPNS2    string
	SWID      string
	UseCache  bool
}

func NewClient(st *store.Store, leagueID, year int) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Store:     st,
		BaseURL:   "https://fantasy.espn.com/apis/v3/games/fba",
		UserAgent: "fba-matchup-raw/1.0",
		LeagueID:  leagueID,
		Year:      year,
		UseCache:  true,
	}
}

func (c *Client) leagueURL(views []string) string {
	u := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.BaseURL, c.Year, c.LeagueID)
	q := url.Values{}
	for _, v := range views {
		q.Add("view", v)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// FetchViews downloads the league endpoint with the given view params
// and writes the body to relPath. Returns raw bytes from cache or
// network.
func (c *Client) FetchViews(views []string, relPath string, force bool) ([]byte, error) {
	if !force && c.UseCache && c.Store.Exists(relPath) {
		return c.Store.Read(relPath)
	}

	req, err := http.NewRequest("GET", c.leagueURL(views), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.ESPNS2 != "" && c.SWID != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.ESPNS2})
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.SWID})
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("league %d: authentication failed, check espn_s2 and SWID cookies", c.LeagueID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET league %d views=%v failed: %d body=%s", c.LeagueID, views, resp.StatusCode, string(body))
	}

	if err := c.Store.Write(relPath, body); err != nil {
		return nil, err
	}
	return body, nil
}
