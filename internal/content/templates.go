package content

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/theme"
)

// RenderProjects lays out one bordered card per project.
func (p *Profile) RenderProjects(width int) string {
	accent := theme.Accent()
	title := lipgloss.NewStyle().Bold(true).Foreground(accent)
	headline := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.Dim())
	tag := lipgloss.NewStyle().
		Foreground(theme.WindowBg()).
		Background(accent).
		Padding(0, 1)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderInactive()).
		Padding(0, 1)

	// border and padding take two cells each side
	inner := max(width-4, 1)

	parts := []string{lipgloss.Wrap(dim.Render(p.Projects.Intro), width, ""), ""}
	for _, pr := range p.Projects.Items {
		var body []string
		body = append(body, wrapLines(title.Render(pr.Name), inner)...)
		if pr.Headline != "" {
			body = append(body, wrapLines(headline.Render(pr.Headline), inner)...)
		}
		if pr.Description != "" {
			body = append(body, RenderInline(pr.Description, inner))
		}
		if len(pr.Tags) > 0 {
			body = append(body, tagRows(pr.Tags, tag, inner)...)
		}
		if pr.URL != "" {
			body = append(body, wrapLines(dim.Render("↗ "+pr.URL), inner)...)
		}
		filled := lipgloss.NewStyle().Width(inner).Render(strings.Join(body, "\n"))
		parts = append(parts, card.Render(filled))
	}
	return strings.Join(parts, "\n")
}

// tagRows flows rendered tags into rows no wider than width.
func tagRows(tags []string, style lipgloss.Style, width int) []string {
	var rows []string
	var row []string
	used := 0
	for _, t := range tags {
		chip := style.Render(t)
		w := lipgloss.Width(chip)
		if len(row) > 0 && used+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		if len(row) > 0 {
			used++
		}
		row = append(row, chip)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return rows
}

// RenderSkills draws each category with a labelled percentage bar per
// skill, followed by the footer.
func (p *Profile) RenderSkills(width int) string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent())
	dim := lipgloss.NewStyle().Foreground(theme.Dim())
	footer := lipgloss.NewStyle().Italic(true).Foreground(theme.Dim())

	bar := progress.New(progress.WithWidth(max(width, 4)), progress.WithoutPercentage())

	var lines []string
	for i, cat := range p.Skills.Categories {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, heading.Render(cat.Name))
		for _, s := range cat.Items {
			pct := fmt.Sprintf("%d%%", s.Level)
			gap := max(width-lipgloss.Width(s.Name)-len(pct), 1)
			lines = append(lines, s.Name+strings.Repeat(" ", gap)+dim.Render(pct))
			lines = append(lines, bar.ViewAs(float64(s.Level)/100))
		}
	}
	if p.Skills.Footer != "" {
		lines = append(lines, "")
		lines = append(lines, wrapLines(footer.Render(p.Skills.Footer), width)...)
	}
	return strings.Join(lines, "\n")
}

// RenderResume renders the resume markdown with its download link.
func (p *Profile) RenderResume(width int) string {
	out := RenderMarkdown(p.Resume.Markdown, width)
	if p.Resume.URL != "" {
		link := lipgloss.NewStyle().Foreground(theme.Accent()).Underline(true)
		out += "\n\n" + lipgloss.Wrap("Full resume: "+link.Render(p.Resume.URL), width, "")
	}
	return out
}

// RenderEasterEgg renders the hidden message centred in the window.
func (p *Profile) RenderEasterEgg(width int) string {
	body := RenderMarkdown(p.EasterEgg.Markdown, width)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(body)
}
