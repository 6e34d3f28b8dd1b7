package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/truthops/content-planner/pkg/models"
)

// ExportVersion is the schema version stamped on every JSON export.
const ExportVersion = "1.0"

// IDProvider supplies fresh IDs for imported entities that arrive without
// one.
type IDProvider interface {
	NextID() string
}

// ExportEnvelope is the interchange format for a week plan: the parsed
// entities plus version and export timestamp, without the raw source
// documents. Media attachments reference local files and are not exported.
type ExportEnvelope struct {
	Version          string                   `json:"version"`
	ExportedAt       time.Time                `json:"exportedAt"`
	WeekOf           string                   `json:"weekOf"`
	Metadata         models.WeekMetadata      `json:"metadata"`
	Tweets           []models.TweetItem       `json:"tweets"`
	EngagementBlocks []models.EngagementBlock `json:"engagementBlocks"`
	ZoraContent      []models.ZoraContent     `json:"zoraContent"`
}

// ExportWeekPlanJSON serializes a week plan into the versioned interchange
// envelope as indented JSON.
func ExportWeekPlanJSON(plan models.WeekPlan) ([]byte, error) {
	env := ExportEnvelope{
		Version:          ExportVersion,
		ExportedAt:       time.Now().UTC(),
		WeekOf:           plan.WeekOf,
		Metadata:         plan.Parsed.Metadata,
		Tweets:           nonNilTweets(plan.Parsed.Tweets),
		EngagementBlocks: nonNilBlocks(plan.Parsed.EngagementBlocks),
		ZoraContent:      stripMedia(plan.Parsed.ZoraContent),
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting week plan: %w", err)
	}
	return data, nil
}

// The entity lists always serialize as JSON arrays, never null, so an
// export with no tweets remains importable.
func nonNilTweets(items []models.TweetItem) []models.TweetItem {
	if items == nil {
		return []models.TweetItem{}
	}
	return items
}

func nonNilBlocks(items []models.EngagementBlock) []models.EngagementBlock {
	if items == nil {
		return []models.EngagementBlock{}
	}
	return items
}

// stripMedia drops media attachments, which point at local files and have no
// meaning outside this machine.
func stripMedia(items []models.ZoraContent) []models.ZoraContent {
	out := make([]models.ZoraContent, len(items))
	for i, item := range items {
		item.Media = nil
		out[i] = item
	}
	return out
}

// ImportWeekPlanJSON reconstructs a week plan from exported JSON. The
// envelope must carry tweets and zoraContent lists; entities missing an ID
// are assigned a fresh one. The raw source documents are not part of the
// envelope, so the imported plan has empty raws.
func ImportWeekPlanJSON(data []byte, ids IDProvider) (*models.WeekPlan, error) {
	var env ExportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("importing week plan: parsing JSON: %w", err)
	}

	if env.Tweets == nil || env.ZoraContent == nil {
		return nil, fmt.Errorf("importing week plan: missing required fields")
	}

	weekOf := env.WeekOf
	if weekOf == "" {
		weekOf = env.Metadata.WeekOf
	}

	for i := range env.Tweets {
		if env.Tweets[i].ID == "" {
			env.Tweets[i].ID = ids.NextID()
		}
	}
	for i := range env.EngagementBlocks {
		if env.EngagementBlocks[i].ID == "" {
			env.EngagementBlocks[i].ID = ids.NextID()
		}
	}
	for i := range env.ZoraContent {
		if env.ZoraContent[i].ID == "" {
			env.ZoraContent[i].ID = ids.NextID()
		}
	}

	now := time.Now()
	return &models.WeekPlan{
		ID:        ids.NextID(),
		CreatedAt: now,
		UpdatedAt: now,
		WeekOf:    weekOf,
		Parsed: models.ParsedWeekPlan{
			Metadata:         env.Metadata,
			Tweets:           env.Tweets,
			EngagementBlocks: env.EngagementBlocks,
			ZoraContent:      env.ZoraContent,
		},
	}, nil
}
