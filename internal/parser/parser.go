package parser

import "strings"

// DefaultPlatform is the platform tag assigned to parsed tweets and
// engagement blocks unless the config overrides it.
const DefaultPlatform = "twitter"

// Parser turns raw planning documents into typed week-plan records. The
// zero-cost construction carries no state between calls; a single Parser is
// safe for concurrent use.
type Parser struct {
	ids           IDGenerator
	platform      string
	defaultPeriod string
}

// New creates a Parser that stamps entities with IDs from ids. platform tags
// the parsed tweets and engagement blocks (empty means DefaultPlatform);
// defaultPeriod ("AM" or "PM") is the fallback for engagement time ranges
// with no period marker (empty means "AM").
func New(ids IDGenerator, platform, defaultPeriod string) *Parser {
	if ids == nil {
		ids = NewIDGenerator()
	}
	if platform == "" {
		platform = DefaultPlatform
	}
	defaultPeriod = strings.ToUpper(strings.TrimSpace(defaultPeriod))
	if defaultPeriod != "PM" {
		defaultPeriod = "AM"
	}
	return &Parser{
		ids:           ids,
		platform:      platform,
		defaultPeriod: defaultPeriod,
	}
}
