package tui

import (
	"bytes"
	"encoding/json"
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

	for _, line := range strings.Split(data, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
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

	return b.String()
}

// compactJSON squeezes a metrics document onto one line; documents that are
// not JSON are shown as received.
func compactJSON(document string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(document)); err != nil {
		return strings.TrimSpace(document)
	}
	return buf.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len([]rune(v)) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
