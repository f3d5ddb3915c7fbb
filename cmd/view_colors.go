package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")
var colorFailure = lipgloss.Color("#E1244C")

var styleOK = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(colorFailure).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
