package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bunchhieng/lv/internal/model"
)

const (
	maxURLLen   = 50
	maxTitleLen = 40
	maxTagsLen  = 30
	ellipsis    = "..."
)

type styles struct {
	added   lipgloss.Style
	updated lipgloss.Style
	deleted lipgloss.Style
	id      lipgloss.Style
	url     lipgloss.Style
	tags    lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	label   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		added:   r.NewStyle().Foreground(lipgloss.Color("2")),
		updated: r.NewStyle().Foreground(lipgloss.Color("3")),
		deleted: r.NewStyle().Foreground(lipgloss.Color("1")),
		id:      r.NewStyle().Bold(true),
		url:     r.NewStyle().Foreground(lipgloss.Color("6")),
		tags:    r.NewStyle().Foreground(lipgloss.Color("3")),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		border:  r.NewStyle().Faint(true),
		label:   r.NewStyle().Bold(true).Width(13),
	}
}

const (
	colID = iota
	colTitle
	colURL
	colTags
)

func (c *Commands) renderTable(links []model.Link) string {
	rows := make([][]string, 0, len(links))
	for _, link := range links {
		rows = append(rows, []string{
			link.ID,
			truncate(link.Title, maxTitleLen),
			truncate(link.URL, maxURLLen),
			truncate(strings.Join(link.Tags, ","), maxTagsLen),
		})
	}

	s := c.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("ID", "TITLE", "URL", "TAGS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			switch col {
			case colID:
				return s.cell.Inherit(s.id)
			case colURL:
				return s.cell.Inherit(s.url)
			case colTags:
				return s.cell.Inherit(s.tags)
			}
			return s.cell
		})

	return t.Render()
}

func (c *Commands) renderDetail(link model.Link) string {
	s := c.styles
	lines := []string{
		s.label.Render("ID") + s.id.Render(link.ID),
		s.label.Render("Title") + link.Title,
		s.label.Render("URL") + s.url.Render(link.URL),
		s.label.Render("Description") + link.Description,
		s.label.Render("Tags") + s.tags.Render(link.TagString()),
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
