package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jiratools/preflight/pkg/probe"
)

var styleSuccessBox = lipgloss.NewStyle().
	Padding(0, 1).
	Margin(1, 0).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorSuccess).
	Width(80)

func renderSuccess(result *probe.Result) string {
	return styleSuccessBox.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styleOK.Render("✔ JIRA CONNECTION SUCCESSFUL"),
			lipgloss.JoinHorizontal(lipgloss.Left, "authenticated as ", styleHighlight.Render(result.DisplayName)),
		),
	)
}
