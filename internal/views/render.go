package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	Body         string
	StatusLine   string
	Footer       string
	Notification string
	Color        bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	plainStyle  = lipgloss.NewStyle()
)

func RenderApp(data AppData) string {
	header := headerStyle
	status := statusStyle
	errStyle := errorStyle
	footer := footerStyle
	if !data.Color {
		header, status, errStyle, footer = plainStyle, plainStyle, plainStyle, plainStyle
	}

	statusLine := status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		statusLine = errStyle.Render(data.StatusLine)
	}

	lines := []string{
		header.Render(data.Header),
		panelStyle.Width(76).Render(data.Body),
		statusLine,
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
