package models

import "time"

// TweetItem is a single tweet scheduled for the week. Time is the canonical
// 24-hour HH:MM string, or nil if no time could be parsed. Text may contain
// embedded newlines; interior blank lines are preserved verbatim.
type TweetItem struct {
	ID       string      `yaml:"id" json:"id"`
	Day      DayOfWeek   `yaml:"day" json:"day"`
	Time     *string     `yaml:"time,omitempty" json:"time"`
	Text     string      `yaml:"text" json:"text"`
	Status   TweetStatus `yaml:"status" json:"status"`
	Platform string      `yaml:"platform" json:"platform"`
}

// EngagementBlock is a reserved window for outbound interaction, distinct
// from a scheduled tweet. StartTime and EndTime are canonical HH:MM strings;
// empty string means the time was not detected in the source document.
type EngagementBlock struct {
	ID           string           `yaml:"id" json:"id"`
	Day          DayOfWeek        `yaml:"day" json:"day"`
	StartTime    string           `yaml:"start_time" json:"startTime"`
	EndTime      string           `yaml:"end_time" json:"endTime"`
	Platform     string           `yaml:"platform" json:"platform"`
	Targets      []string         `yaml:"targets" json:"targets"`
	Instructions string           `yaml:"instructions" json:"instructions"`
	ProfileLinks []string         `yaml:"profile_links" json:"profileLinks"`
	Status       EngagementStatus `yaml:"status" json:"status"`
	IsSkipped    bool             `yaml:"is_skipped" json:"isSkipped"`
	SkipReason   string           `yaml:"skip_reason,omitempty" json:"skipReason,omitempty"`
}

// ZoraContentType distinguishes narrated video content from image artifacts.
type ZoraContentType string

const (
	ZoraVideo ZoraContentType = "video"
	ZoraImage ZoraContentType = "image"
)

// MediaFile is an attached media asset for a Zora content item.
type MediaFile struct {
	Name string          `yaml:"name" json:"name"`
	Type ZoraContentType `yaml:"type" json:"type"`
	URL  string          `yaml:"url" json:"url"`
}

// ZoraContent is a unified visual content item covering both video (voice
// activation) and image (artifact) types. RevePrompt aggregates all
// generative-visual prompt material in one copyable field; ScriptText holds
// the narration script for video items only.
type ZoraContent struct {
	ID          string          `yaml:"id" json:"id"`
	Type        ZoraContentType `yaml:"type" json:"type"`
	Day         DayOfWeek       `yaml:"day" json:"day"`
	Time        *string         `yaml:"time,omitempty" json:"time"`
	Ticker      *string         `yaml:"ticker,omitempty" json:"ticker"`
	Title       *string         `yaml:"title,omitempty" json:"title"`
	Description string          `yaml:"description" json:"description"`
	ScriptText  *string         `yaml:"script_text,omitempty" json:"scriptText,omitempty"`
	RevePrompt  string          `yaml:"reve_prompt" json:"revePrompt"`
	Media       *MediaFile      `yaml:"media,omitempty" json:"mediaFile,omitempty"`
	Status      ZoraStatus      `yaml:"status" json:"status"`
}

// WeekMetadata holds the header fields scraped from the schedule document.
// WeekOf defaults to the empty string; the remaining fields are nil when the
// corresponding label line was absent.
type WeekMetadata struct {
	WeekOf        string  `yaml:"week_of" json:"weekOf"`
	Theme         *string `yaml:"theme,omitempty" json:"theme"`
	CoreTension   *string `yaml:"core_tension,omitempty" json:"coreTension"`
	WeekType      *string `yaml:"week_type,omitempty" json:"weekType"`
	SystemOutcome *string `yaml:"system_outcome,omitempty" json:"systemOutcome"`
}

// ParsedWeekPlan is the aggregate output of the parsing pipelines. The three
// entity lists share only day tags; no entity owns another.
type ParsedWeekPlan struct {
	Metadata         WeekMetadata      `yaml:"metadata" json:"metadata"`
	Tweets           []TweetItem       `yaml:"tweets" json:"tweets"`
	EngagementBlocks []EngagementBlock `yaml:"engagement_blocks" json:"engagementBlocks"`
	ZoraContent      []ZoraContent     `yaml:"zora_content" json:"zoraContent"`
}

// WeekPlan is the stored envelope around a parsed plan: the plan's own
// identity and timestamps plus the raw source documents it was parsed from.
type WeekPlan struct {
	ID                 string         `yaml:"id" json:"id"`
	CreatedAt          time.Time      `yaml:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `yaml:"updated_at" json:"updatedAt"`
	WeekOf             string         `yaml:"week_of" json:"weekOf"`
	ScheduleRaw        string         `yaml:"schedule_raw" json:"scheduleRaw"`
	VoiceActivationRaw string         `yaml:"voice_activation_raw" json:"voiceActivationRaw"`
	ArtifactRaw        string         `yaml:"artifact_raw" json:"artifactRaw"`
	Parsed             ParsedWeekPlan `yaml:"parsed" json:"parsed"`
}
