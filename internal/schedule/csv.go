package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// LoadCSV builds an Index from a season schedule file. Required columns:
// Team, Date (YYYY-MM-DD), HomeAway. Opponent is carried through when
// present; any back-to-back columns in the file are ignored because the
// flags are derived at load.
func LoadCSV(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("schedule header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	teamIdx, ok := col["team"]
	if !ok {
		return nil, fmt.Errorf("schedule file %s: missing Team column", path)
	}
	// Scraped files carry the machine date under ParsedDate and a display
	// string under DATE, so ParsedDate wins when both are present.
	dateIdx, ok := col["parseddate"]
	if !ok {
		if dateIdx, ok = col["date"]; !ok {
			return nil, fmt.Errorf("schedule file %s: missing Date column", path)
		}
	}
	homeIdx, hasHome := col["homeaway"]
	oppIdx, hasOpp := col["opponent"]
	if !hasOpp {
		oppIdx, hasOpp = col["opponentclean"]
	}

	entries := make([]Entry, 0, 2500)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schedule file %s line %d: %w", path, line, err)
		}
		if teamIdx >= len(rec) || dateIdx >= len(rec) {
			continue
		}
		date, err := parseDate(rec[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("schedule file %s line %d: %w", path, line, err)
		}
		e := Entry{Team: rec[teamIdx], Date: date}
		if hasHome && homeIdx < len(rec) {
			e.Home = !strings.EqualFold(strings.TrimSpace(rec[homeIdx]), "Away")
		}
		if hasOpp && oppIdx < len(rec) {
			e.Opponent = strings.TrimSpace(rec[oppIdx])
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("schedule file %s: no games", path)
	}
	return NewIndex(entries)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
