package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bunchhieng/lv/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	statusErrStyle = statusBarStyle.
			Foreground(lipgloss.Color("203"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	searchStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	focusedStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1)

	blurredStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	fieldErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
)

func (m appModel) renderHeader() string {
	header := fmt.Sprintf("lv - Links Vault  [%d/%d links]", len(m.visible), m.links.Len())
	return headerStyle.Render(header)
}

func (m appModel) renderSearchBar() string {
	prompt := fmt.Sprintf("/%s", m.query)
	if m.mode == modeSearch {
		prompt += "█"
	}
	return searchStyle.Width(max(m.width-2, 10)).Render(prompt)
}

func (m appModel) renderList() string {
	if len(m.visible) == 0 {
		if m.query != "" {
			return "No links match your search."
		}
		return "No links found. Press 'a' to add a new link or 'q' to quit."
	}

	// Each link takes two lines; keep room for header, search and status.
	rows := max((m.height-4)/2, 1)
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}

	var b strings.Builder
	for i := start; i < len(m.visible) && i < start+rows; i++ {
		b.WriteString(renderLink(m.visible[i], i == m.selected))
		b.WriteString("\n")
	}
	return b.String()
}

func renderLink(link model.Link, selected bool) string {
	title := truncate(link.Title, 60)

	var tags string
	if len(link.Tags) > 0 {
		tags = " [" + strings.Join(link.Tags, ", ") + "]"
	}

	first := titleStyle.Render(title) + tagStyle.Render(tags)
	second := urlStyle.Render(truncate(link.URL, 70))
	if link.Description != "" {
		second += dimStyle.Render("  " + truncate(firstLine(link.Description), 50))
	}

	if selected {
		return selectedStyle.Render(first + "\n" + second)
	}
	return blurredStyle.Render(first + "\n" + second)
}

func (m appModel) renderForm() string {
	f := m.form
	heading := "Add New Link"
	submit := "enter: save"
	if f.editing() {
		heading = "Edit Link"
		submit = "enter: update"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(heading))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		value := f.values[i]
		style := blurredStyle
		if i == f.focus {
			value += "█"
			style = focusedStyle
		}
		field := labelStyle.Render(fieldLabels[i]) + "\n" + value
		if msg := f.fieldError(i); msg != "" {
			field += "\n" + fieldErrStyle.Render(msg)
		}
		b.WriteString(style.Render(field))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(submit + "  tab: next field  esc: cancel"))
	return b.String()
}

func (m appModel) renderStatusBar() string {
	style := statusBarStyle
	var parts []string

	if m.status != "" {
		parts = append(parts, m.status)
		if m.statusErr {
			style = statusErrStyle
		}
	} else if len(m.visible) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.selected+1, len(m.visible)))
	}

	parts = append(parts, "[o]pen [a]dd [e]dit [r]emove [/]search [?]help [q]uit")

	return style.Width(m.width).Render(strings.Join(parts, "  |  "))
}

func (m appModel) renderDeleteConfirmation() string {
	var title string
	if link, err := m.links.Get(m.deleteID); err == nil {
		title = truncate(link.Title, 50)
	}

	confirmText := fmt.Sprintf("Are you sure you want to delete %q?\n\n[y]es / [n]o", title)
	return selectedStyle.Width(max(m.width-4, 20)).Padding(1, 2).Render(confirmText)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
