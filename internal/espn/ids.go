package espn

import "fmt"

// statNames maps ESPN stat ids to the category names used by the rate
// table and the matchup reconciler.
var statNames = map[int]string{
	0:  "PTS",
	1:  "BLK",
	2:  "STL",
	3:  "AST",
	6:  "REB",
	11: "TO",
	13: "FGM",
	14: "FGA",
	15: "FTM",
	16: "FTA",
	17: "3PM",
	18: "3PA",
	19: "FG%",
	20: "FT%",
}

// StatName resolves an ESPN stat id to a category name. Unknown ids get
// a synthetic STAT_<id> name so they stay visible in breakdowns instead
// of disappearing.
func StatName(id int) string {
	if name, ok := statNames[id]; ok {
		return name
	}
	return fmt.Sprintf("STAT_%d", id)
}

// proTeamAbbr maps ESPN pro-team ids to schedule team codes.
var proTeamAbbr = map[int]string{
	1: "ATL", 2: "BOS", 3: "NO", 4: "CHI", 5: "CLE",
	6: "DAL", 7: "DEN", 8: "DET", 9: "GSW", 10: "HOU",
	11: "IND", 12: "LAC", 13: "LAL", 14: "MIA", 15: "MIL",
	16: "MIN", 17: "BKN", 18: "NYK", 19: "ORL", 20: "PHI",
	21: "PHX", 22: "POR", 23: "SAC", 24: "SAS", 25: "OKC",
	26: "TOR", 27: "UTAH", 28: "WAS", 29: "CHA", 30: "MEM",
}

// ProTeamAbbr resolves an ESPN pro-team id to a team code, "UNK" when
// the id is not a current NBA franchise.
func ProTeamAbbr(id int) string {
	if abbr, ok := proTeamAbbr[id]; ok {
		return abbr
	}
	return "UNK"
}
