package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jiratools/preflight/pkg/probe"
)

var styleErrorWrapper = lipgloss.NewStyle().Padding(0, 0).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorFailure)
var styleErrorHeadingStyle = lipgloss.NewStyle().Foreground(colorFailure).Bold(true)
var styleErrorBodyStyle = lipgloss.NewStyle().PaddingLeft(3).Foreground(colorFailure).Width(80).MaxWidth(80)

func renderFailure(result *probe.Result) string {
	heading := "💥 JIRA CONNECTION FAILED"
	if result.StatusCode != 0 {
		heading = fmt.Sprintf("💥 JIRA CONNECTION FAILED (HTTP %d)", result.StatusCode)
	}

	return styleErrorWrapper.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styleErrorHeadingStyle.Render(heading),
			styleErrorBodyStyle.Render(result.Message),
			styleErrorBodyStyle.MarginTop(1).Render("Check JIRA_BASE_URL, JIRA_USERNAME and JIRA_API_TOKEN before starting dependent services."),
		),
	)
}
