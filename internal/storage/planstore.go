package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/truthops/content-planner/pkg/models"
	"gopkg.in/yaml.v3"
)

// PlanFile represents the top-level structure of week_plan.yaml.
type PlanFile struct {
	Version string           `yaml:"version"`
	Plan    *models.WeekPlan `yaml:"plan"`
}

// TweetUpdate specifies partial changes to a stored tweet. Nil fields are
// left unchanged; ClearTime removes the scheduled time entirely.
type TweetUpdate struct {
	Day       *models.DayOfWeek
	Time      *string
	ClearTime bool
	Text      *string
	Status    *models.TweetStatus
}

// EngagementUpdate specifies partial changes to a stored engagement block.
type EngagementUpdate struct {
	Day          *models.DayOfWeek
	StartTime    *string
	EndTime      *string
	Instructions *string
	Status       *models.EngagementStatus
}

// ZoraUpdate specifies partial changes to a stored Zora content item.
type ZoraUpdate struct {
	Day    *models.DayOfWeek
	Time   *string
	Status *models.ZoraStatus
	Media  *models.MediaFile
}

// WeekPlanStore defines the interface for persisting the current week plan.
type WeekPlanStore interface {
	Load() error
	Save() error
	Get() (*models.WeekPlan, error)
	Put(plan models.WeekPlan) error
	Clear() error
	UpdateTweet(tweetID string, updates TweetUpdate) (*models.TweetItem, error)
	UpdateEngagementBlock(blockID string, updates EngagementUpdate) (*models.EngagementBlock, error)
	UpdateZoraContent(contentID string, updates ZoraUpdate) (*models.ZoraContent, error)
}

type fileWeekPlanStore struct {
	basePath string
	data     PlanFile
	now      func() time.Time
}

// NewWeekPlanStore creates a WeekPlanStore backed by a week_plan.yaml file in
// the given base directory.
func NewWeekPlanStore(basePath string) WeekPlanStore {
	return &fileWeekPlanStore{
		basePath: basePath,
		data:     PlanFile{Version: "1.0"},
		now:      time.Now,
	}
}

func (s *fileWeekPlanStore) filePath() string {
	return filepath.Join(s.basePath, "week_plan.yaml")
}

func (s *fileWeekPlanStore) Load() error {
	data, err := os.ReadFile(s.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			s.data = PlanFile{Version: "1.0"}
			return nil
		}
		return fmt.Errorf("loading week plan: %w", err)
	}

	var pf PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("loading week plan: parsing YAML: %w", err)
	}
	if pf.Version == "" {
		pf.Version = "1.0"
	}
	s.data = pf
	return nil
}

func (s *fileWeekPlanStore) Save() error {
	if err := os.MkdirAll(s.basePath, 0o750); err != nil {
		return fmt.Errorf("saving week plan: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("saving week plan: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(s.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving week plan: writing file: %w", err)
	}
	return nil
}

func (s *fileWeekPlanStore) Get() (*models.WeekPlan, error) {
	if s.data.Plan == nil {
		return nil, fmt.Errorf("no week plan stored")
	}
	plan := *s.data.Plan
	return &plan, nil
}

func (s *fileWeekPlanStore) Put(plan models.WeekPlan) error {
	if plan.ID == "" {
		return fmt.Errorf("storing week plan: ID must not be empty")
	}
	s.data.Plan = &plan
	return nil
}

func (s *fileWeekPlanStore) Clear() error {
	s.data.Plan = nil
	return nil
}

// touch stamps the plan's UpdatedAt after a successful mutation.
func (s *fileWeekPlanStore) touch() {
	if s.data.Plan != nil {
		s.data.Plan.UpdatedAt = s.now()
	}
}

func (s *fileWeekPlanStore) UpdateTweet(tweetID string, updates TweetUpdate) (*models.TweetItem, error) {
	if s.data.Plan == nil {
		return nil, fmt.Errorf("updating tweet: no week plan stored")
	}

	tweets := s.data.Plan.Parsed.Tweets
	for i := range tweets {
		if tweets[i].ID != tweetID {
			continue
		}
		if updates.Day != nil {
			tweets[i].Day = *updates.Day
		}
		if updates.ClearTime {
			tweets[i].Time = nil
		} else if updates.Time != nil {
			tweets[i].Time = updates.Time
		}
		if updates.Text != nil {
			tweets[i].Text = *updates.Text
		}
		if updates.Status != nil {
			tweets[i].Status = *updates.Status
		}
		s.touch()
		tweet := tweets[i]
		return &tweet, nil
	}
	return nil, fmt.Errorf("updating tweet: tweet %s not found", tweetID)
}

func (s *fileWeekPlanStore) UpdateEngagementBlock(blockID string, updates EngagementUpdate) (*models.EngagementBlock, error) {
	if s.data.Plan == nil {
		return nil, fmt.Errorf("updating engagement block: no week plan stored")
	}

	blocks := s.data.Plan.Parsed.EngagementBlocks
	for i := range blocks {
		if blocks[i].ID != blockID {
			continue
		}
		if updates.Day != nil {
			blocks[i].Day = *updates.Day
		}
		if updates.StartTime != nil {
			blocks[i].StartTime = *updates.StartTime
		}
		if updates.EndTime != nil {
			blocks[i].EndTime = *updates.EndTime
		}
		if updates.Instructions != nil {
			blocks[i].Instructions = *updates.Instructions
		}
		if updates.Status != nil {
			blocks[i].Status = *updates.Status
		}
		s.touch()
		block := blocks[i]
		return &block, nil
	}
	return nil, fmt.Errorf("updating engagement block: block %s not found", blockID)
}

func (s *fileWeekPlanStore) UpdateZoraContent(contentID string, updates ZoraUpdate) (*models.ZoraContent, error) {
	if s.data.Plan == nil {
		return nil, fmt.Errorf("updating zora content: no week plan stored")
	}

	items := s.data.Plan.Parsed.ZoraContent
	for i := range items {
		if items[i].ID != contentID {
			continue
		}
		if updates.Day != nil {
			items[i].Day = *updates.Day
		}
		if updates.Time != nil {
			items[i].Time = updates.Time
		}
		if updates.Status != nil {
			items[i].Status = *updates.Status
		}
		if updates.Media != nil {
			items[i].Media = updates.Media
		}
		s.touch()
		item := items[i]
		return &item, nil
	}
	return nil, fmt.Errorf("updating zora content: item %s not found", contentID)
}
