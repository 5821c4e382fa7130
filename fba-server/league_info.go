package main

import (
	"fba-matchup-mcp/internal/espn"
)

type LeagueInfoArgs struct{}

func buildLeagueInfo(cfg ServerConfig) (espn.LeagueInfo, error) {
	return cfg.ESPN.LeagueInfo()
}
