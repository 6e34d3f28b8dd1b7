// Package mcp provides an MCP (Model Context Protocol) server that exposes
// planner functionality as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/truthops/content-planner/internal/core"
	"github.com/truthops/content-planner/internal/observability"
	"github.com/truthops/content-planner/pkg/models"
)

// Server wraps planner services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	planMgr     core.PlanManager
	metricsCalc observability.MetricsCalculator
}

// NewServer creates a new MCP server with the given planner service
// dependencies. metricsCalc may be nil if observability is disabled.
func NewServer(planMgr core.PlanManager, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		planMgr:     planMgr,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "planner", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on the given transport, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type parseDocumentInput struct {
	Document string `json:"document" jsonschema:"required,the raw planning document text (combined paste or schedule only)"`
}

type parseDocumentOutput struct {
	PlanID           string `json:"plan_id"`
	WeekOf           string `json:"week_of"`
	Tweets           int    `json:"tweets"`
	EngagementBlocks int    `json:"engagement_blocks"`
	ZoraContent      int    `json:"zora_content"`
}

type getPlanInput struct{}

type tweetOutput struct {
	ID       string `json:"id"`
	Day      string `json:"day"`
	Time     string `json:"time,omitempty"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	Platform string `json:"platform"`
}

type engagementOutput struct {
	ID           string   `json:"id"`
	Day          string   `json:"day"`
	StartTime    string   `json:"start_time,omitempty"`
	EndTime      string   `json:"end_time,omitempty"`
	Targets      []string `json:"targets,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Status       string   `json:"status"`
	IsSkipped    bool     `json:"is_skipped"`
	SkipReason   string   `json:"skip_reason,omitempty"`
}

type zoraOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Day         string `json:"day"`
	Ticker      string `json:"ticker,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

type getPlanOutput struct {
	PlanID           string             `json:"plan_id"`
	WeekOf           string             `json:"week_of"`
	Theme            string             `json:"theme,omitempty"`
	UpdatedAt        string             `json:"updated_at"`
	Tweets           []tweetOutput      `json:"tweets"`
	EngagementBlocks []engagementOutput `json:"engagement_blocks"`
	ZoraContent      []zoraOutput       `json:"zora_content"`
}

type listTweetsInput struct {
	Day    string `json:"day,omitempty" jsonschema:"filter by day code (Mon, Tue, Wed, Thu, Fri, Sat, Sun, Unassigned)"`
	Status string `json:"status,omitempty" jsonschema:"filter by status (draft, approved, scheduled, posted)"`
}

type listTweetsOutput struct {
	Tweets []tweetOutput `json:"tweets"`
	Count  int           `json:"count"`
}

type updateTweetStatusInput struct {
	TweetID string `json:"tweet_id" jsonschema:"required,the tweet identifier"`
	Status  string `json:"status" jsonschema:"required,the new status (draft, approved, scheduled, posted)"`
}

type updateTweetStatusOutput struct {
	Message string `json:"message"`
}

type updateZoraStatusInput struct {
	ContentID string `json:"content_id" jsonschema:"required,the zora content identifier"`
	Status    string `json:"status,omitempty" jsonschema:"the target step (prompt, reve, media, metadata, posted); omit to advance one step"`
	Force     bool   `json:"force,omitempty" jsonschema:"allow moving backward in the production lifecycle"`
}

type updateZoraStatusOutput struct {
	Message string `json:"message"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	PlansImported     int            `json:"plans_imported"`
	PlansExported     int            `json:"plans_exported"`
	TweetUpdates      int            `json:"tweet_updates"`
	TweetsByStatus    map[string]int `json:"tweets_by_status"`
	EngagementUpdates int            `json:"engagement_updates"`
	ZoraUpdates       int            `json:"zora_updates"`
	ZoraByStatus      map[string]int `json:"zora_by_status"`
	EventCount        int            `json:"event_count"`
	OldestEvent       string         `json:"oldest_event,omitempty"`
	NewestEvent       string         `json:"newest_event,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "parse_document",
		Description: "Parse a raw weekly planning document (combined paste supported) into a structured week plan and store it as the current plan.",
	}, s.handleParseDocument)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_plan",
		Description: "Get the current week plan: metadata, tweets, engagement blocks, and zora content.",
	}, s.handleGetPlan)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tweets",
		Description: "List this week's tweets with optional day and status filters.",
	}, s.handleListTweets)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_tweet_status",
		Description: "Update a tweet's lifecycle status. Valid statuses: draft, approved, scheduled, posted.",
	}, s.handleUpdateTweetStatus)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_zora_status",
		Description: "Advance a zora content item one production step, or jump to an explicit step (prompt, reve, media, metadata, posted).",
	}, s.handleUpdateZoraStatus)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get aggregated metrics from the event log: plans imported/exported and entity updates by status.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleParseDocument(_ context.Context, _ *gomcp.CallToolRequest, input parseDocumentInput) (*gomcp.CallToolResult, parseDocumentOutput, error) {
	if input.Document == "" {
		return errorResult("document is required"), parseDocumentOutput{}, nil
	}

	plan, err := s.planMgr.ImportCombined(input.Document)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing document: %s", err)), parseDocumentOutput{}, nil
	}

	out := parseDocumentOutput{
		PlanID:           plan.ID,
		WeekOf:           plan.WeekOf,
		Tweets:           len(plan.Parsed.Tweets),
		EngagementBlocks: len(plan.Parsed.EngagementBlocks),
		ZoraContent:      len(plan.Parsed.ZoraContent),
	}
	return nil, out, nil
}

func (s *Server) handleGetPlan(_ context.Context, _ *gomcp.CallToolRequest, _ getPlanInput) (*gomcp.CallToolResult, getPlanOutput, error) {
	plan, err := s.planMgr.CurrentPlan()
	if err != nil {
		return errorResult(fmt.Sprintf("getting plan: %s", err)), getPlanOutput{}, nil
	}

	out := getPlanOutput{
		PlanID:           plan.ID,
		WeekOf:           plan.WeekOf,
		UpdatedAt:        plan.UpdatedAt.Format(time.RFC3339),
		Tweets:           make([]tweetOutput, len(plan.Parsed.Tweets)),
		EngagementBlocks: make([]engagementOutput, len(plan.Parsed.EngagementBlocks)),
		ZoraContent:      make([]zoraOutput, len(plan.Parsed.ZoraContent)),
	}
	if plan.Parsed.Metadata.Theme != nil {
		out.Theme = *plan.Parsed.Metadata.Theme
	}
	for i, tw := range plan.Parsed.Tweets {
		out.Tweets[i] = tweetToOutput(tw)
	}
	for i, eb := range plan.Parsed.EngagementBlocks {
		out.EngagementBlocks[i] = engagementOutput{
			ID:           eb.ID,
			Day:          string(eb.Day),
			StartTime:    eb.StartTime,
			EndTime:      eb.EndTime,
			Targets:      eb.Targets,
			Instructions: eb.Instructions,
			Status:       string(eb.Status),
			IsSkipped:    eb.IsSkipped,
			SkipReason:   eb.SkipReason,
		}
	}
	for i, zc := range plan.Parsed.ZoraContent {
		out.ZoraContent[i] = zoraToOutput(zc)
	}

	return nil, out, nil
}

func (s *Server) handleListTweets(_ context.Context, _ *gomcp.CallToolRequest, input listTweetsInput) (*gomcp.CallToolResult, listTweetsOutput, error) {
	plan, err := s.planMgr.CurrentPlan()
	if err != nil {
		return errorResult(fmt.Sprintf("listing tweets: %s", err)), listTweetsOutput{}, nil
	}

	out := listTweetsOutput{Tweets: []tweetOutput{}}
	for _, tw := range plan.Parsed.Tweets {
		if input.Day != "" && string(tw.Day) != input.Day {
			continue
		}
		if input.Status != "" && string(tw.Status) != input.Status {
			continue
		}
		out.Tweets = append(out.Tweets, tweetToOutput(tw))
	}
	out.Count = len(out.Tweets)

	return nil, out, nil
}

func (s *Server) handleUpdateTweetStatus(_ context.Context, _ *gomcp.CallToolRequest, input updateTweetStatusInput) (*gomcp.CallToolResult, updateTweetStatusOutput, error) {
	if input.TweetID == "" {
		return errorResult("tweet_id is required"), updateTweetStatusOutput{}, nil
	}
	if input.Status == "" {
		return errorResult("status is required"), updateTweetStatusOutput{}, nil
	}

	if _, err := s.planMgr.SetTweetStatus(input.TweetID, models.TweetStatus(input.Status)); err != nil {
		return errorResult(fmt.Sprintf("updating tweet %s: %s", input.TweetID, err)), updateTweetStatusOutput{}, nil
	}

	out := updateTweetStatusOutput{
		Message: fmt.Sprintf("tweet %s status updated to %s", input.TweetID, input.Status),
	}
	return nil, out, nil
}

func (s *Server) handleUpdateZoraStatus(_ context.Context, _ *gomcp.CallToolRequest, input updateZoraStatusInput) (*gomcp.CallToolResult, updateZoraStatusOutput, error) {
	if input.ContentID == "" {
		return errorResult("content_id is required"), updateZoraStatusOutput{}, nil
	}

	var item *models.ZoraContent
	var err error
	if input.Status == "" {
		item, err = s.planMgr.AdvanceZora(input.ContentID)
	} else {
		item, err = s.planMgr.SetZoraStatus(input.ContentID, models.ZoraStatus(input.Status), input.Force)
	}
	if err != nil {
		return errorResult(fmt.Sprintf("updating zora content %s: %s", input.ContentID, err)), updateZoraStatusOutput{}, nil
	}

	out := updateZoraStatusOutput{
		Message: fmt.Sprintf("zora content %s moved to %s", input.ContentID, item.Status),
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		PlansImported:     metrics.PlansImported,
		PlansExported:     metrics.PlansExported,
		TweetUpdates:      metrics.TweetUpdates,
		TweetsByStatus:    metrics.TweetsByStatus,
		EngagementUpdates: metrics.EngagementUpdates,
		ZoraUpdates:       metrics.ZoraUpdates,
		ZoraByStatus:      metrics.ZoraByStatus,
		EventCount:        metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

func tweetToOutput(tw models.TweetItem) tweetOutput {
	out := tweetOutput{
		ID:       tw.ID,
		Day:      string(tw.Day),
		Text:     tw.Text,
		Status:   string(tw.Status),
		Platform: tw.Platform,
	}
	if tw.Time != nil {
		out.Time = *tw.Time
	}
	return out
}

func zoraToOutput(zc models.ZoraContent) zoraOutput {
	out := zoraOutput{
		ID:          zc.ID,
		Type:        string(zc.Type),
		Day:         string(zc.Day),
		Description: zc.Description,
		Status:      string(zc.Status),
	}
	if zc.Ticker != nil {
		out.Ticker = *zc.Ticker
	}
	if zc.Title != nil {
		out.Title = *zc.Title
	}
	return out
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{
		TweetsByStatus: make(map[string]int),
		ZoraByStatus:   make(map[string]int),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
