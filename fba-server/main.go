package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fba-matchup-mcp/internal/espn"
	"fba-matchup-mcp/internal/fetch"
	"fba-matchup-mcp/internal/projection"
	"fba-matchup-mcp/internal/rates"
	"fba-matchup-mcp/internal/schedule"
	"fba-matchup-mcp/internal/store"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerConfig carries the loaded data tables and league adapter shared
// by every tool. Schedule and Rates are loaded once at startup and are
// read-only afterwards.
type ServerConfig struct {
	Schedule *schedule.Index
	Rates    *rates.Table
	ESPN     *espn.Adapter
	TeamID   int
	Now      func() time.Time
}

func (cfg ServerConfig) engine() *projection.Engine {
	return &projection.Engine{Schedule: cfg.Schedule, Rates: cfg.Rates}
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr         = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath      = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		dataRoot     = flag.String("data-root", "data", "root directory for season data")
		season       = flag.Int("season", 2026, "season year (2026 = 2025-26)")
		schedulePath = flag.String("schedule", "", "schedule CSV (default <data-root>/<season>/team_schedules.csv)")
		statsPath    = flag.String("stats", "", "player stats CSV (default <data-root>/<season>/player_stats.csv)")
		offline      = flag.Bool("offline", false, "never hit the ESPN API, read cached payloads only")
		requireAuth  = flag.Bool("require-auth", true, "require API key auth via FBA_MCP_API_KEY")
		authHeader   = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	// .env carries the ESPN cookies and league identity, same values the
	// browser session uses.
	_ = godotenv.Load()

	leagueID, err := envInt("LEAGUE_ID")
	if err != nil {
		log.Fatal(err)
	}
	teamID, err := envInt("TEAM_ID")
	if err != nil {
		log.Fatal(err)
	}

	seasonRoot := filepath.Join(*dataRoot, strconv.Itoa(*season))
	schedFile := *schedulePath
	if schedFile == "" {
		schedFile = filepath.Join(seasonRoot, "team_schedules.csv")
	}
	statsFile := *statsPath
	if statsFile == "" {
		statsFile = filepath.Join(seasonRoot, "player_stats.csv")
	}

	// Both tables are required: the core cannot operate without them.
	index, err := schedule.LoadCSV(schedFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded schedule: %d games, %d teams (%s to %s)",
		index.Len(), len(index.Teams()),
		index.FirstDate().Format("2006-01-02"), index.LastDate().Format("2006-01-02"))

	table, err := rates.LoadCSV(statsFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded player stats: %d records", table.Len())

	st := store.New(filepath.Join(seasonRoot, "raw"))
	adapter := &espn.Adapter{Store: st, LeagueID: leagueID}
	if !*offline {
		client := fetch.NewClient(st, leagueID, *season)
		client.ESPNS2 = os.Getenv("ESPN_S2")
		client.SWID = os.Getenv("SWID")
		adapter.Fetch = client
	}

	cfg := ServerConfig{
		Schedule: index,
		Rates:    table,
		ESPN:     adapter,
		TeamID:   teamID,
		Now:      time.Now,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fba-matchup-mcp",
			Version: "0.1.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_info",
		Description: "League name, size, scoring type, and category list",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueInfoArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueInfo(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "matchup_analysis",
		Description: "Current category scoreline plus rest-of-week projections and projected final record",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MatchupAnalysisArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatchupAnalysis(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "matchup_comparison",
		Description: "Side-by-side rest-of-week projections for you and your opponent",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args MatchupComparisonArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildMatchupComparison(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "roster_projection",
		Description: "Projected stat totals for a roster over a date window",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RosterProjectionArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildRosterProjection(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_schedule",
		Description: "A team's games in a date range with back-to-back flags",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamScheduleArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamSchedule(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "teams_playing_on",
		Description: "Teams with a game on a specific date",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamsPlayingOnArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTeamsPlayingOn(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "weekly_game_counts",
		Description: "Games per team for a Monday-to-Sunday week",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args WeeklyGameCountsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildWeeklyGameCounts(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "streaming_days",
		Description: "Which teams play on each day of a window, for pickup/drop planning",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args StreamingDaysArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStreamingDays(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "best_streaming_weeks",
		Description: "Weeks ranked by total scheduled games",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args BestStreamingWeeksArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(buildBestStreamingWeeks(cfg, args))
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "season_schedule_summary",
		Description: "Season-long weekly game volume per team (total/avg/max/min)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SeasonScheduleSummaryArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildSeasonScheduleSummary(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolJSON(out)
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("FBA_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("FBA_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Printf("MCP HTTP server listening on %s%s", *addr, *mcpPath)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func envInt(key string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, fmt.Errorf("%s is required (set env var or .env)", key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func toolJSON(out any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
