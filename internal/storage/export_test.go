package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/truthops/content-planner/pkg/models"
)

type seqIDProvider struct {
	n int
}

func (p *seqIDProvider) NextID() string {
	p.n++
	return fmt.Sprintf("import-%d", p.n)
}

func TestExportWeekPlanJSON(t *testing.T) {
	plan := sampleWeekPlan("plan-1")
	plan.Parsed.ZoraContent[0].Media = &models.MediaFile{Name: "clip.mp4", Type: models.ZoraVideo, URL: "blob:local"}

	data, err := ExportWeekPlanJSON(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if env["version"] != ExportVersion {
		t.Errorf("version = %v", env["version"])
	}
	if env["weekOf"] != plan.WeekOf {
		t.Errorf("weekOf = %v", env["weekOf"])
	}
	if _, ok := env["exportedAt"]; !ok {
		t.Error("exportedAt missing")
	}
	if strings.Contains(string(data), "blob:local") {
		t.Error("local media URL leaked into export")
	}
	if strings.Contains(string(data), "scheduleRaw") {
		t.Error("raw source document leaked into export")
	}
}

func TestImportWeekPlanJSON_RoundTrip(t *testing.T) {
	plan := sampleWeekPlan("plan-1")
	data, err := ExportWeekPlanJSON(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ImportWeekPlanJSON(data, &seqIDProvider{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID == plan.ID {
		t.Error("imported plan should get a fresh plan ID")
	}
	if got.WeekOf != plan.WeekOf {
		t.Errorf("weekOf = %q", got.WeekOf)
	}
	if got.ScheduleRaw != "" {
		t.Errorf("imported plan should have empty raws, got %q", got.ScheduleRaw)
	}
	if len(got.Parsed.Tweets) != 2 || got.Parsed.Tweets[0].ID != "tweet-1" {
		t.Errorf("tweets = %+v", got.Parsed.Tweets)
	}
	if got.Parsed.Metadata.Theme == nil || *got.Parsed.Metadata.Theme != *plan.Parsed.Metadata.Theme {
		t.Errorf("theme = %v", got.Parsed.Metadata.Theme)
	}
}

func TestExportWeekPlanJSON_RoundTripNoTweets(t *testing.T) {
	// A voice/artifact-only plan has nil tweet and engagement slices; the
	// export must still emit arrays so its own output re-imports cleanly.
	plan := sampleWeekPlan("plan-1")
	plan.Parsed.Tweets = nil
	plan.Parsed.EngagementBlocks = nil

	data, err := ExportWeekPlanJSON(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), `"tweets": null`) {
		t.Error("tweets serialized as null instead of an empty array")
	}
	if strings.Contains(string(data), `"engagementBlocks": null`) {
		t.Error("engagementBlocks serialized as null instead of an empty array")
	}

	got, err := ImportWeekPlanJSON(data, &seqIDProvider{})
	if err != nil {
		t.Fatalf("re-importing own export: %v", err)
	}
	if len(got.Parsed.Tweets) != 0 {
		t.Errorf("tweets = %+v", got.Parsed.Tweets)
	}
	if len(got.Parsed.ZoraContent) != len(plan.Parsed.ZoraContent) {
		t.Errorf("zora content = %+v", got.Parsed.ZoraContent)
	}
}

func TestImportWeekPlanJSON_RegeneratesMissingIDs(t *testing.T) {
	raw := `{
		"version": "1.0",
		"weekOf": "Week 3",
		"metadata": {"weekOf": "Week 3"},
		"tweets": [{"day": "Mon", "text": "hello", "status": "draft", "platform": "twitter"}],
		"engagementBlocks": [],
		"zoraContent": [{"type": "image", "day": "Mon", "description": "d", "revePrompt": "p", "status": "prompt"}]
	}`

	got, err := ImportWeekPlanJSON([]byte(raw), &seqIDProvider{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Parsed.Tweets[0].ID == "" {
		t.Error("tweet ID not regenerated")
	}
	if got.Parsed.ZoraContent[0].ID == "" {
		t.Error("zora content ID not regenerated")
	}
	if got.Parsed.Tweets[0].ID == got.Parsed.ZoraContent[0].ID {
		t.Error("regenerated IDs collide")
	}
}

func TestImportWeekPlanJSON_MissingFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"tweets": []}`,
		`{"zoraContent": []}`,
		`not json`,
	}
	for _, raw := range cases {
		if _, err := ImportWeekPlanJSON([]byte(raw), &seqIDProvider{}); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestImportWeekPlanJSON_WeekOfFallback(t *testing.T) {
	raw := `{
		"metadata": {"weekOf": "Week 5"},
		"tweets": [],
		"zoraContent": []
	}`
	got, err := ImportWeekPlanJSON([]byte(raw), &seqIDProvider{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WeekOf != "Week 5" {
		t.Errorf("weekOf = %q, want fallback from metadata", got.WeekOf)
	}
}
