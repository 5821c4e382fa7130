package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a season-averages file into a Table. Required columns:
// Name, Team; each known stat column is optional and defaults to zero,
// so a file with a missing category still loads.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("player stats file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("player stats header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	nameIdx, ok := col["NAME"]
	if !ok {
		return nil, fmt.Errorf("player stats file %s: missing Name column", path)
	}
	teamIdx, ok := col["TEAM"]
	if !ok {
		return nil, fmt.Errorf("player stats file %s: missing Team column", path)
	}

	stat := func(rec []string, key string) float64 {
		i, ok := col[key]
		if !ok || i >= len(rec) {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
		if err != nil {
			return 0
		}
		return v
	}

	rows := make([]PlayerRate, 0, 600)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("player stats file %s line %d: %w", path, line, err)
		}
		if nameIdx >= len(rec) || teamIdx >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		if name == "" {
			continue
		}
		rows = append(rows, PlayerRate{
			Name:    name,
			Team:    strings.ToUpper(strings.TrimSpace(rec[teamIdx])),
			PTS:     stat(rec, "PTS"),
			REB:     stat(rec, "REB"),
			AST:     stat(rec, "AST"),
			STL:     stat(rec, "STL"),
			BLK:     stat(rec, "BLK"),
			FGM:     stat(rec, "FGM"),
			FGA:     stat(rec, "FGA"),
			FTM:     stat(rec, "FTM"),
			FTA:     stat(rec, "FTA"),
			ThreePM: stat(rec, "3PM"),
			ThreePA: stat(rec, "3PA"),
			TO:      stat(rec, "TO"),
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("player stats file %s: no players", path)
	}
	return New(rows), nil
}
