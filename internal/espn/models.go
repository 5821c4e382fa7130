package espn

import (
	"encoding/json"
	"strconv"
)

// Raw shapes of the ESPN fantasy v3 league views this adapter consumes.
// Only the fields the tools need are decoded.

type settingsRaw struct {
	Settings struct {
		Name            string `json:"name"`
		Size            int    `json:"size"`
		ScoringSettings struct {
			ScoringType  string `json:"scoringType"`
			ScoringItems []struct {
				StatID        int  `json:"statId"`
				IsReverseItem bool `json:"isReverseItem"`
			} `json:"scoringItems"`
		} `json:"scoringSettings"`
		AcquisitionSettings struct {
			AcquisitionLimit int `json:"acquisitionLimit"`
		} `json:"acquisitionSettings"`
	} `json:"settings"`
}

type rosterRaw struct {
	Teams []struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Abbrev       string `json:"abbrev"`
		PrimaryOwner string `json:"primaryOwner"`
		Roster       struct {
			Entries []struct {
				LineupSlotID    int `json:"lineupSlotId"`
				PlayerPoolEntry struct {
					Player struct {
						ID           int    `json:"id"`
						FullName     string `json:"fullName"`
						ProTeamID    int    `json:"proTeamId"`
						InjuryStatus string `json:"injuryStatus"`
					} `json:"player"`
				} `json:"playerPoolEntry"`
			} `json:"entries"`
		} `json:"roster"`
	} `json:"teams"`
}

type matchupRaw struct {
	ScoringPeriodID int `json:"scoringPeriodId"`
	Schedule        []struct {
		MatchupPeriodID int             `json:"matchupPeriodId"`
		Home            matchupSideRaw  `json:"home"`
		Away            matchupSideRaw  `json:"away"`
	} `json:"schedule"`
}

type matchupSideRaw struct {
	TeamID          int                `json:"teamId"`
	TotalPoints     float64            `json:"totalPoints"`
	CumulativeScore cumulativeScoreRaw `json:"cumulativeScore"`
}

// cumulativeScoreRaw holds the per-stat cumulative values, which ESPN
// serves under either scoreByStat or stats depending on the view, with
// each entry either a {"score": x} object or a bare number. Wins and
// Losses are the aggregate category counters; mid-week payloads often
// report them 0-0 even with live stat values present.
type cumulativeScoreRaw struct {
	Wins        int                        `json:"wins"`
	Losses      int                        `json:"losses"`
	Ties        int                        `json:"ties"`
	ScoreByStat map[string]json.RawMessage `json:"scoreByStat"`
	Stats       map[string]json.RawMessage `json:"stats"`
}

// Values normalizes the cumulative score into stat-id keyed floats,
// trying each payload shape in order until one yields data.
func (c cumulativeScoreRaw) Values() map[int]float64 {
	for _, source := range []map[string]json.RawMessage{c.ScoreByStat, c.Stats} {
		if len(source) == 0 {
			continue
		}
		out := make(map[int]float64, len(source))
		for key, raw := range source {
			id, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			out[id] = scoreValue(raw)
		}
		return out
	}
	return map[int]float64{}
}

func scoreValue(raw json.RawMessage) float64 {
	var obj struct {
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Score
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return 0
}
