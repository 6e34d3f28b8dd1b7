package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/truthops/content-planner/internal/core"
	"github.com/truthops/content-planner/internal/parser"
	"github.com/truthops/content-planner/pkg/models"
)

type timelineModel struct {
	activeDay int
	width     int
	height    int

	// Data.
	weekOf string
	days   []core.DayTimeline

	// State.
	loading bool
	err     error
}

// timelineLoadedMsg carries the loaded week feed back to the model.
type timelineLoadedMsg struct {
	weekOf string
	days   []core.DayTimeline
	err    error
}

// Style definitions.
var (
	timelineTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	dayPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activeDayPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			MarginBottom(1)

	kindTweet      = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	kindEngagement = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	kindZora       = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	itemDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	itemSkipped = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	timelineHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTimelineModel() timelineModel {
	return timelineModel{loading: true}
}

func (m timelineModel) Init() tea.Cmd {
	return loadTimeline
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			if len(m.days) > 0 {
				m.activeDay = (m.activeDay + 1) % len(m.days)
			}
			return m, nil
		case "shift+tab", "left", "h":
			if len(m.days) > 0 {
				m.activeDay = (m.activeDay - 1 + len(m.days)) % len(m.days)
			}
			return m, nil
		case "r":
			m.loading = true
			return m, loadTimeline
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timelineLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.weekOf = msg.weekOf
		m.days = msg.days
		if m.activeDay >= len(m.days) {
			m.activeDay = 0
		}
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m timelineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	heading := " Week Timeline "
	if m.weekOf != "" {
		heading = fmt.Sprintf(" Week Timeline | %s ", m.weekOf)
	}
	title := timelineTitleStyle.Render(heading)
	help := timelineHelpStyle.Render("tab/←→: switch day | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading plan...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	if len(m.days) == 0 {
		return fmt.Sprintf("%s\n\n  The current plan has no scheduled items.\n\n%s", title, help)
	}

	panels := make([]string, len(m.days))
	for i, day := range m.days {
		panels[i] = m.renderDayPanel(day)
	}

	// Available width for panels after accounting for margins.
	availableWidth := m.width - 2

	var body string
	if availableWidth > len(m.days)*40 {
		// Horizontal layout: one column per day.
		colWidth := availableWidth / len(m.days)
		for i := range panels {
			panels[i] = m.applyDayStyle(i, panels[i], colWidth-4)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	} else {
		// Vertical layout: stacked days.
		panelWidth := availableWidth - 4
		if panelWidth < 30 {
			panelWidth = 30
		}
		for i := range panels {
			panels[i] = m.applyDayStyle(i, panels[i], panelWidth)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m timelineModel) applyDayStyle(index int, content string, width int) string {
	style := dayPanelStyle
	if m.activeDay == index {
		style = activeDayPanelStyle
	}
	return style.Width(width).Render(content)
}

func (m timelineModel) renderDayPanel(day core.DayTimeline) string {
	var b strings.Builder
	b.WriteString(dayHeaderStyle.Render(models.DayFullNames[day.Day]))
	b.WriteString("\n")

	for _, item := range day.Items {
		t := "--:--"
		if item.Time != "" {
			t = parser.FormatTimeForDisplay(item.Time)
		}
		line := fmt.Sprintf("%-8s %-4s %s", t, timelineKindTag(item.Kind), item.Label)
		b.WriteString(styleForTimelineItem(item).Render(line))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d item(s)", len(day.Items)))

	return b.String()
}

func timelineKindTag(kind core.TimelineKind) string {
	switch kind {
	case core.TimelineTweet:
		return "TW"
	case core.TimelineEngagement:
		return "ENG"
	case core.TimelineZora:
		return "ZORA"
	default:
		return "?"
	}
}

func styleForTimelineItem(item core.TimelineItem) lipgloss.Style {
	if strings.HasPrefix(item.Label, "skipped:") {
		return itemSkipped
	}
	// "posted" covers both tweets and Zora content.
	switch item.Status {
	case string(models.TweetPosted), string(models.EngagementDone):
		return itemDone
	}
	switch item.Kind {
	case core.TimelineTweet:
		return kindTweet
	case core.TimelineEngagement:
		return kindEngagement
	case core.TimelineZora:
		return kindZora
	default:
		return lipgloss.NewStyle()
	}
}

func loadTimeline() tea.Msg {
	result := timelineLoadedMsg{}

	if PlanMgr == nil {
		result.err = fmt.Errorf("plan manager not initialized")
		return result
	}

	plan, err := PlanMgr.CurrentPlan()
	if err != nil {
		result.err = fmt.Errorf("loading plan: %w", err)
		return result
	}

	result.weekOf = plan.WeekOf
	result.days = core.BuildTimeline(plan.Parsed)
	return result
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Interactive TUI week timeline",
	Long: `Launch an interactive terminal view of the week: tweets, engagement
blocks, and Zora content merged into a per-day timeline.

Navigate between days with Tab or the arrow keys, refresh with r,
quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if PlanMgr == nil {
			return fmt.Errorf("plan manager not initialized")
		}
		p := tea.NewProgram(newTimelineModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}
