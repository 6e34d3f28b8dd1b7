package parser

import "github.com/truthops/content-planner/pkg/models"

// Assemble parses the three source documents and combines the results into a
// single week plan. Blank documents contribute nothing; the call never fails.
func (p *Parser) Assemble(scheduleRaw, voiceRaw, artifactRaw string) models.ParsedWeekPlan {
	sched := p.ParseSchedule(scheduleRaw)
	return models.ParsedWeekPlan{
		Metadata:         sched.Metadata,
		Tweets:           sched.Tweets,
		EngagementBlocks: sched.EngagementBlocks,
		ZoraContent:      p.ParseZoraContent(voiceRaw, artifactRaw),
	}
}

// AssembleCombined splits a single pasted document into its schedule, voice
// activation, and artifact parts, then parses each.
func (p *Parser) AssembleCombined(full string) (models.ParsedWeekPlan, SplitDocument) {
	split := SplitCombinedDocument(full)
	return p.Assemble(split.Schedule, split.VoiceActivation, split.Artifact), split
}
