package parser

import (
	"regexp"
	"strings"

	"github.com/truthops/content-planner/pkg/models"
)

var (
	voiceScriptSection = regexp.MustCompile(`(?i)^1\.\s*(Final\s+)?Voice\s+Script`)
	voiceScriptInline  = regexp.MustCompile(`(?i)Voice\s+Script\s*\(?locked\)?`)
	reveSection        = regexp.MustCompile(`(?i)^2\.\s*REVE`)
	reveDashSection    = regexp.MustCompile(`(?i)^REVE\s*[\x{2013}\x{2014}-]`)
	sceneBySceneHdr    = regexp.MustCompile(`(?i)Scene-by-Scene\s+Prompts`)
	styleSection       = regexp.MustCompile(`(?i)^3\.\s*Overall\s+Style`)
	styleBlockHdr      = regexp.MustCompile(`(?i)^(Overall\s+)?Style\s+Block`)
	captionSection     = regexp.MustCompile(`(?i)^(4\.\s*)?Zora\s+(Caption|Description)`)
	sceneHeader        = regexp.MustCompile(`(?i)^Scene\s+\d+\s*[\x{2013}\x{2014}-]`)
	tickerToken        = regexp.MustCompile(`^\$(\w+)\s*$`)

	artifactPromptHdr = regexp.MustCompile(`(?i)^1\.\s*`)
	layoutOrPrompt    = regexp.MustCompile(`(?i)layout|prompt`)
	artifactDescHdr   = regexp.MustCompile(`(?i)^2\.\s*REFINED`)
	descriptionCopy   = regexp.MustCompile(`(?i)DESCRIPTION\s+COPY|ZORA\s+DESCRIPTION`)
	artifactUsageHdr  = regexp.MustCompile(`(?i)^3\.\s*EXPLICIT`)
	usageInstructions = regexp.MustCompile(`(?i)USAGE\s+INSTRUCTIONS|How\s+to\s+use`)
	layoutNoise       = regexp.MustCompile(`(?i)^(Header\s*\(|Main\s+body\s*\()`)
	bareLayoutLabel   = regexp.MustCompile(`(?i)^(Quadrant|Timing|Method|Rule)\s*$`)
)

// Separator labels used when concatenating prompt material into RevePrompt
// and usage instructions into the description.
const (
	sceneSeparator = "--- REVE Scene Prompts ---"
	styleSeparator = "\n--- Style Block ---"
	usageSeparator = "\n\n--- Usage ---\n"
)

// ParseZoraContent parses the voice-activation and artifact documents into
// unified visual content items: a video item for a non-blank voice document
// and an image item for a non-blank artifact document, in that order.
func (p *Parser) ParseZoraContent(voiceRaw, artifactRaw string) []models.ZoraContent {
	var content []models.ZoraContent
	if video := p.ParseVoiceActivation(voiceRaw); video != nil {
		content = append(content, *video)
	}
	if image := p.ParseArtifact(artifactRaw); image != nil {
		content = append(content, *image)
	}
	return content
}

// ParseVoiceActivation extracts a video content item from a voice-activation
// document: the narration script, the REVE scene-by-scene prompts, the style
// block, and the Zora caption. Returns nil only for blank input.
func (p *Parser) ParseVoiceActivation(raw string) *models.ZoraContent {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var (
		scriptLines  []string
		scenePrompts []string
		styleLines   []string
		captionLines []string
		sceneTitle   string
		sceneContent []string
		ticker       *string
	)
	section := ""

	saveScene := func() {
		if len(sceneContent) == 0 {
			sceneTitle = ""
			return
		}
		prompt := strings.Join(sceneContent, "\n")
		if sceneTitle != "" {
			prompt = sceneTitle + "\n" + prompt
		}
		scenePrompts = append(scenePrompts, prompt)
		sceneTitle = ""
		sceneContent = nil
	}

	lines := strings.Split(raw, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case voiceScriptSection.MatchString(trimmed) || voiceScriptInline.MatchString(trimmed):
			saveScene()
			section = "script"
			// Swallow a "(locked)" marker on its own following line.
			if i+1 < len(lines) && lockedLine.MatchString(strings.TrimSpace(lines[i+1])) {
				i++
			}
			continue
		case reveSection.MatchString(trimmed) || reveDashSection.MatchString(trimmed) || sceneBySceneHdr.MatchString(trimmed):
			saveScene()
			section = "reve"
			continue
		case styleSection.MatchString(trimmed) || styleBlockHdr.MatchString(trimmed):
			saveScene()
			section = "style"
			continue
		case captionSection.MatchString(trimmed):
			saveScene()
			section = "caption"
			continue
		case lockedLine.MatchString(trimmed):
			continue
		}

		if m := tickerToken.FindStringSubmatch(trimmed); m != nil {
			t := "$" + strings.ToUpper(m[1])
			ticker = &t
			continue
		}

		if section == "reve" && sceneHeader.MatchString(trimmed) {
			saveScene()
			sceneTitle = trimmed
			continue
		}

		switch section {
		case "script":
			scriptLines = appendJoined(scriptLines, trimmed)
		case "reve":
			if trimmed != "" {
				sceneContent = append(sceneContent, trimmed)
			} else if len(sceneContent) > 0 {
				sceneContent = append(sceneContent, "")
			}
		case "style":
			if trimmed != "" {
				styleLines = append(styleLines, trimmed)
			} else if len(styleLines) > 0 {
				styleLines = append(styleLines, "")
			}
		case "caption":
			captionLines = appendJoined(captionLines, trimmed)
		}
	}
	saveScene()

	var allPrompts []string
	if len(scenePrompts) > 0 {
		allPrompts = append(allPrompts, sceneSeparator)
		allPrompts = append(allPrompts, scenePrompts...)
	}
	if len(styleLines) > 0 {
		allPrompts = append(allPrompts, styleSeparator, strings.Join(styleLines, "\n"))
	}

	status := models.ZoraPrompt
	if len(scenePrompts) > 0 {
		status = models.ZoraReve
	}

	script := strings.Join(scriptLines, "\n")
	title := "Voice Activation"
	return &models.ZoraContent{
		ID:          p.ids.NextID(),
		Type:        models.ZoraVideo,
		Day:         models.DayMon,
		Ticker:      ticker,
		Title:       &title,
		Description: strings.Join(captionLines, "\n"),
		ScriptText:  &script,
		RevePrompt:  strings.Join(allPrompts, "\n\n"),
		Status:      status,
	}
}

// ParseArtifact extracts an image content item from an artifact document:
// the piece layout prompt, the front-facing description, the usage
// instructions, and a standalone "$WORD" ticker line. Returns nil only for
// blank input.
func (p *Parser) ParseArtifact(raw string) *models.ZoraContent {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var (
		ticker      *string
		promptLines []string
		descLines   []string
		usageLines  []string
	)
	section := "prompt"

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := tickerToken.FindStringSubmatch(trimmed); m != nil {
			t := "$" + strings.ToUpper(m[1])
			ticker = &t
			continue
		}

		switch {
		case artifactPromptHdr.MatchString(trimmed) && layoutOrPrompt.MatchString(trimmed):
			section = "prompt"
			continue
		case artifactDescHdr.MatchString(trimmed) || descriptionCopy.MatchString(trimmed):
			section = "description"
			continue
		case artifactUsageHdr.MatchString(trimmed) || usageInstructions.MatchString(trimmed):
			section = "usage"
			continue
		case layoutNoise.MatchString(trimmed) || bareLayoutLabel.MatchString(trimmed):
			// Structural layout labels carry no content.
			continue
		}

		switch section {
		case "prompt":
			promptLines = append(promptLines, trimmed)
		case "description":
			descLines = append(descLines, trimmed)
		case "usage":
			usageLines = append(usageLines, trimmed)
		}
	}

	description := strings.Join(descLines, "\n")
	if len(usageLines) > 0 {
		description += usageSeparator + strings.Join(usageLines, "\n")
	}

	title := "Artifact"
	return &models.ZoraContent{
		ID:          p.ids.NextID(),
		Type:        models.ZoraImage,
		Day:         models.DayMon,
		Ticker:      ticker,
		Title:       &title,
		Description: description,
		RevePrompt:  strings.Join(promptLines, "\n"),
		Status:      models.ZoraPrompt,
	}
}

// appendJoined accumulates free-text lines, keeping blank continuation lines
// once the section has content (multi-paragraph support).
func appendJoined(acc []string, trimmed string) []string {
	if trimmed == "" && len(acc) == 0 {
		return acc
	}
	return append(acc, trimmed)
}
