package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentSanitizer = bluemonday.UGCPolicy()

	headingMarker = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	emojiHeading  = regexp.MustCompile(`^[🎯👥💼🎨🔧🌍]`)
	capsHeading   = regexp.MustCompile(`^[A-Z][A-Z\s]+:$`)
	bulletMarker  = regexp.MustCompile(`^[-•*]\s*`)
	boldSpan      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicSpan    = regexp.MustCompile(`\*([^*]+)\*`)
	codeSpan      = regexp.MustCompile("`([^`]+)`")
)

// FormatLongDescription converts a free-text long description into a
// restricted HTML fragment. The text splits on blank lines into
// paragraphs; each paragraph is rendered by the first matching rule:
// markdown-style heading markers, emoji or ALL-CAPS section headers,
// a headed bullet list, a bare list or line group, and finally a plain
// paragraph with bold/italic/code spans. Rule order matters: later
// rules are reached only when earlier patterns fail. The result is
// sanitized before being returned. Empty input yields an empty string.
func FormatLongDescription(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var b strings.Builder
	for _, paragraph := range strings.Split(normalized, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		b.WriteString(renderParagraph(paragraph))
	}

	return fragmentSanitizer.Sanitize(b.String())
}

func renderParagraph(paragraph string) string {
	if m := headingMarker.FindStringSubmatch(paragraph); m != nil {
		level := len(m[1])
		return fmt.Sprintf("<h%d>%s</h%d>", level, strings.TrimSpace(m[2]), level)
	}

	if emojiHeading.MatchString(paragraph) || capsHeading.MatchString(paragraph) {
		return "<h3>" + paragraph + "</h3>"
	}

	if strings.Contains(paragraph, "\n") && strings.Contains(paragraph, ":") {
		lines := strings.Split(paragraph, "\n")
		var b strings.Builder
		b.WriteString("<h4>" + strings.TrimSpace(lines[0]) + "</h4>")
		items := nonBlankLines(lines[1:])
		if len(items) > 0 {
			b.WriteString("<ul>")
			for _, item := range items {
				if clean := stripBullet(item); clean != "" {
					b.WriteString("<li>" + clean + "</li>")
				}
			}
			b.WriteString("</ul>")
		}
		return b.String()
	}

	if strings.Contains(paragraph, "\n") {
		lines := nonBlankLines(strings.Split(paragraph, "\n"))
		if len(lines) == 0 {
			return ""
		}

		bulleted := false
		for _, line := range lines {
			if bulletMarker.MatchString(line) {
				bulleted = true
				break
			}
		}

		var b strings.Builder
		if bulleted || len(lines) > 2 {
			b.WriteString("<ul>")
			for _, line := range lines {
				if clean := stripBullet(line); clean != "" {
					b.WriteString("<li>" + clean + "</li>")
				}
			}
			b.WriteString("</ul>")
		} else {
			for _, line := range lines {
				b.WriteString("<p>" + line + "</p>")
			}
		}
		return b.String()
	}

	return "<p>" + renderInlineSpans(paragraph) + "</p>"
}

// renderInlineSpans replaces **bold**, *italic* and `code` markers,
// in that order, non-overlapping and first-match-wins per marker type.
func renderInlineSpans(text string) string {
	text = boldSpan.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicSpan.ReplaceAllString(text, "<em>$1</em>")
	text = codeSpan.ReplaceAllString(text, "<code>$1</code>")
	return text
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletMarker.ReplaceAllString(strings.TrimSpace(line), ""))
}

func nonBlankLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return kept
}
