package parser

import (
	"regexp"
	"strings"

	"github.com/truthops/content-planner/pkg/models"
)

// ScheduleResult is the output of ParseSchedule: the week header metadata,
// the scheduled tweets, and the engagement blocks, all tagged by day.
type ScheduleResult struct {
	Metadata         models.WeekMetadata
	Tweets           []models.TweetItem
	EngagementBlocks []models.EngagementBlock
}

var (
	dayHeaderPattern   = regexp.MustCompile(`(?i)^(MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)\s*[\x{2013}\x{2014}-]\s*(.+)$`)
	engagementOpener   = regexp.MustCompile(`(?i)^Engagement\s+Block\s*\d*`)
	tweetHeaderPattern = regexp.MustCompile(`(?i)^(Anchor Copy|Micro-post|Quote-post)\s*\((\d{1,2}:\d{2}\s*(?:AM|PM)?)\)`)
	timeRangePattern   = regexp.MustCompile(`(?i)^(\d{1,2}:\d{2})\s*[\x{2013}\x{2014}-]\s*(\d{1,2}:\d{2})\s*(AM|PM)?`)
	periodToken        = regexp.MustCompile(`(?i)(AM|PM)`)
	bulletPrefix       = regexp.MustCompile(`^[-\x{2022}*]\s*`)
	handlePattern      = regexp.MustCompile(`@[\w_]+`)
	leadingDigit       = regexp.MustCompile(`^\d`)

	// sectionBoundary recognizes any header that terminates a tweet body:
	// the next tweet, an engagement block, the schedule divider, or a day.
	sectionBoundary = regexp.MustCompile(`(?i)^(Anchor Copy|Micro-post|Quote-post|Engagement Block|Posting Schedule|MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)`)
)

// metadataLabels maps label prefixes to metadata field setters, checked in
// order against the start of each line.
var metadataLabels = []string{"Week of:", "Theme:", "Core Tension:", "Week Type:", "System Outcome:"}

// scheduleState carries the accumulators of the line state machine.
type scheduleState struct {
	result ScheduleResult

	currentDay   models.DayOfWeek
	inEngagement bool

	// Engagement block accumulator.
	engStart        string
	engEnd          string
	engTargets      []string
	engInstructions []string
	engProfiles     []string

	// Tweet accumulator.
	pendingTime string
	collecting  bool
	tweetLines  []string
}

// ParseSchedule walks the schedule document line by line and extracts week
// metadata, scheduled tweets, and engagement blocks. Each non-empty line is
// matched against a fixed priority of classifiers; the first match wins.
// Interior blank lines inside a tweet body are preserved; a tweet is flushed
// only by a recognized header line or end of input.
func (p *Parser) ParseSchedule(raw string) ScheduleResult {
	st := &scheduleState{currentDay: models.DayUnassigned}

	lines := strings.Split(raw, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" {
			// Preserve interior blank lines of a tweet body. The leading
			// guard avoids a blank line before any content.
			if st.collecting && len(st.tweetLines) > 0 {
				st.tweetLines = append(st.tweetLines, "")
			}
			continue
		}

		if p.classifyMetadata(st, trimmed) {
			continue
		}

		if m := dayHeaderPattern.FindStringSubmatch(trimmed); m != nil {
			p.flushTweet(st)
			p.flushEngagement(st)
			st.currentDay = NormalizeDay(m[1])
			st.inEngagement = false
			continue
		}

		if trimmed == "Posting Schedule" {
			// Pure section divider: terminates whatever is in progress.
			p.flushTweet(st)
			p.flushEngagement(st)
			st.inEngagement = false
			continue
		}

		if engagementOpener.MatchString(trimmed) {
			p.flushTweet(st)
			p.flushEngagement(st)
			st.inEngagement = true
			continue
		}

		// Tweet headers outrank engagement-body handling: a new post always
		// terminates an open engagement block.
		if m := tweetHeaderPattern.FindStringSubmatch(trimmed); m != nil {
			p.flushTweet(st)
			p.flushEngagement(st)
			st.inEngagement = false
			st.pendingTime = m[2]
			st.collecting = true
			continue
		}

		if st.inEngagement && strings.Contains(trimmed, "❌") {
			reason := ""
			if i+1 < len(lines) {
				reason = strings.TrimSpace(lines[i+1])
			}
			p.emitSkippedEngagement(st, reason)
			st.inEngagement = false
			continue
		}

		if st.inEngagement {
			p.classifyEngagementLine(st, trimmed)
			continue
		}

		if st.collecting {
			if sectionBoundary.MatchString(trimmed) {
				// The next section has begun: flush and re-process this line.
				p.flushTweet(st)
				i--
				continue
			}
			st.tweetLines = append(st.tweetLines, trimmed)
		}
	}

	p.flushTweet(st)
	p.flushEngagement(st)

	return st.result
}

// classifyMetadata handles the week header label lines. Returns true when
// the line was consumed.
func (p *Parser) classifyMetadata(st *scheduleState, trimmed string) bool {
	for _, label := range metadataLabels {
		if !strings.HasPrefix(trimmed, label) {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(trimmed, label))
		switch label {
		case "Week of:":
			st.result.Metadata.WeekOf = value
		case "Theme:":
			st.result.Metadata.Theme = &value
		case "Core Tension:":
			st.result.Metadata.CoreTension = &value
		case "Week Type:":
			st.result.Metadata.WeekType = &value
		case "System Outcome:":
			st.result.Metadata.SystemOutcome = &value
		}
		return true
	}
	return false
}

// classifyEngagementLine handles a line inside an open engagement block.
func (p *Parser) classifyEngagementLine(st *scheduleState, trimmed string) {
	if m := timeRangePattern.FindStringSubmatch(trimmed); m != nil {
		period := strings.ToUpper(m[3])
		if period == "" {
			// The period may trail the range elsewhere on the line.
			if tok := periodToken.FindString(trimmed); tok != "" {
				period = strings.ToUpper(tok)
			} else {
				period = p.defaultPeriod
			}
		}
		if start, ok := NormalizeTime(m[1] + " " + period); ok {
			st.engStart = start
		}
		if end, ok := NormalizeTime(m[2] + " " + period); ok {
			st.engEnd = end
		}
		return
	}

	// Instruction verb lines are guidance, not targets.
	if strings.HasPrefix(trimmed, "Engage with") ||
		strings.HasPrefix(trimmed, "Reply to") ||
		strings.HasPrefix(trimmed, "Quote-post") {
		st.engInstructions = append(st.engInstructions, trimmed)
		return
	}

	if bulletPrefix.MatchString(trimmed) && !strings.Contains(trimmed, ":") {
		targets, handles := parseEngagementTargets(trimmed)
		st.engTargets = append(st.engTargets, targets...)
		st.engProfiles = append(st.engProfiles, handles...)
		// Bullets also join the instructions for full-context display.
		st.engInstructions = append(st.engInstructions, trimmed)
		return
	}

	if !leadingDigit.MatchString(trimmed) {
		if looksLikeTarget(trimmed) {
			targets, handles := parseEngagementTargets(trimmed)
			st.engTargets = append(st.engTargets, targets...)
			st.engProfiles = append(st.engProfiles, handles...)
		}
		st.engInstructions = append(st.engInstructions, trimmed)
	}
}

// looksLikeTarget reports whether a plain (non-bullet) engagement line reads
// as a short topic descriptor rather than prose guidance: a few words, no
// colon, no sentence punctuation.
func looksLikeTarget(trimmed string) bool {
	if strings.ContainsAny(trimmed, ":.!?") {
		return false
	}
	return len(strings.Fields(trimmed)) <= 4
}

// parseEngagementTargets extracts @handles and free-text topics from a
// target line, splitting on commas and semicolons.
func parseEngagementTargets(text string) (targets, profileLinks []string) {
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		cleaned := strings.TrimSpace(part)
		if cleaned == "" {
			continue
		}

		profileLinks = append(profileLinks, handlePattern.FindAllString(cleaned, -1)...)

		topic := strings.TrimSpace(bulletPrefix.ReplaceAllString(cleaned, ""))
		if topic != "" && !strings.HasPrefix(topic, "@") {
			targets = append(targets, topic)
		}
	}
	return targets, profileLinks
}

// flushTweet commits the in-progress tweet if its accumulated text is
// non-empty after trimming, then resets the accumulator.
func (p *Parser) flushTweet(st *scheduleState) {
	text := strings.Trim(strings.Join(st.tweetLines, "\n"), " \t\n\r")
	if text != "" {
		var timePtr *string
		if t, ok := NormalizeTime(st.pendingTime); ok {
			timePtr = &t
		}
		st.result.Tweets = append(st.result.Tweets, models.TweetItem{
			ID:       p.ids.NextID(),
			Day:      st.currentDay,
			Time:     timePtr,
			Text:     text,
			Status:   models.TweetDraft,
			Platform: p.platform,
		})
	}
	st.tweetLines = nil
	st.collecting = false
}

// flushEngagement commits the in-progress engagement block if it captured a
// start time or at least one target; a block with neither is discarded.
func (p *Parser) flushEngagement(st *scheduleState) {
	if st.engStart != "" || len(st.engTargets) > 0 {
		st.result.EngagementBlocks = append(st.result.EngagementBlocks, models.EngagementBlock{
			ID:           p.ids.NextID(),
			Day:          st.currentDay,
			StartTime:    st.engStart,
			EndTime:      st.engEnd,
			Platform:     p.platform,
			Targets:      st.engTargets,
			Instructions: strings.TrimSpace(strings.Join(st.engInstructions, "\n")),
			ProfileLinks: st.engProfiles,
			Status:       models.EngagementPending,
			IsSkipped:    false,
		})
	}
	st.engStart = ""
	st.engEnd = ""
	st.engTargets = nil
	st.engInstructions = nil
	st.engProfiles = nil
	st.inEngagement = false
}

// emitSkippedEngagement records a block the document explicitly marked as
// skipped. The skip marker bypasses the normal commit contract and the
// block lands terminal (status done).
func (p *Parser) emitSkippedEngagement(st *scheduleState, reason string) {
	st.result.EngagementBlocks = append(st.result.EngagementBlocks, models.EngagementBlock{
		ID:           p.ids.NextID(),
		Day:          st.currentDay,
		Platform:     p.platform,
		Instructions: reason,
		Status:       models.EngagementDone,
		IsSkipped:    true,
		SkipReason:   reason,
	})
	st.engStart = ""
	st.engEnd = ""
	st.engTargets = nil
	st.engInstructions = nil
	st.engProfiles = nil
}
