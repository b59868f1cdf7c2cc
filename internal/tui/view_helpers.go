package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// wrapText folds s into lines no wider than max runes, breaking on
// spaces. Verse text comes back from the API as one long line.
func wrapText(s string, max int) string {
	if max <= 0 {
		return s
	}

	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(s) {
		w := len([]rune(word))
		if line > 0 && line+1+w > max {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += w
	}
	return b.String()
}
