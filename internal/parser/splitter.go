package parser

import (
	"regexp"
	"strings"
)

// SplitDocument holds the three raw sub-documents extracted from one
// combined paste. Sections that were never detected are empty strings.
type SplitDocument struct {
	Schedule        string
	VoiceActivation string
	Artifact        string
}

var (
	splitDayHeader     = regexp.MustCompile(`(?i)^(MONDAY|TUESDAY|WEDNESDAY|THURSDAY|FRIDAY|SATURDAY|SUNDAY)\s*[\x{2013}\x{2014}-]`)
	voiceActivationHdr = regexp.MustCompile(`(?i)^Voice\s+Activation$`)
	voiceScriptHdr     = regexp.MustCompile(`(?i)^1\.\s*(Final\s+)?Voice\s+Script`)
	voiceScriptLocked  = regexp.MustCompile(`(?i)^Voice\s+Script\s*\(locked\)`)
	lockedLine         = regexp.MustCompile(`(?i)^\(locked\)$`)
	artifactHdr        = regexp.MustCompile(`(?i)^Artifact$`)
	tickerLine         = regexp.MustCompile(`^\$\w+\s*$`)
	pieceLayoutHdr     = regexp.MustCompile(`(?i)^1\.\s*Piece\s+Layout`)
)

// SplitCombinedDocument partitions one pasted "everything at once" document
// into its schedule, voice-activation, and artifact sections with a single
// forward line scan. Boundary markers are only honored after at least one
// weekday header has been seen, the artifact boundary is only searched for
// after the voice boundary, and ticker-like lines ("$WORD") only count as an
// artifact boundary in the back 40% of the document. If no boundaries are
// found everything lands in Schedule; the function never fails.
func SplitCombinedDocument(full string) SplitDocument {
	lines := strings.Split(full, "\n")

	var schedule, voice, artifact []string
	section := &schedule

	foundVoice := false
	foundArtifact := false
	seenDayHeader := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !seenDayHeader && splitDayHeader.MatchString(trimmed) {
			seenDayHeader = true
		}

		if !foundVoice && seenDayHeader {
			next := ""
			if i+1 < len(lines) {
				next = strings.TrimSpace(lines[i+1])
			}

			isBoundary := voiceActivationHdr.MatchString(trimmed) ||
				voiceScriptHdr.MatchString(trimmed) ||
				voiceScriptLocked.MatchString(trimmed) ||
				lockedLine.MatchString(next) ||
				voiceScriptHdr.MatchString(next)

			if isBoundary {
				section = &voice
				foundVoice = true
				voice = append(voice, line)
				continue
			}
		}

		if !foundArtifact && foundVoice {
			inBackPortion := i > len(lines)*6/10

			isBoundary := artifactHdr.MatchString(trimmed) ||
				(tickerLine.MatchString(trimmed) && inBackPortion) ||
				(pieceLayoutHdr.MatchString(trimmed) && inBackPortion)

			if isBoundary {
				section = &artifact
				foundArtifact = true
				artifact = append(artifact, line)
				continue
			}
		}

		*section = append(*section, line)
	}

	return SplitDocument{
		Schedule:        strings.Join(schedule, "\n"),
		VoiceActivation: strings.Join(voice, "\n"),
		Artifact:        strings.Join(artifact, "\n"),
	}
}
