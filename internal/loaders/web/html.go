package web

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled expressions for HTML cleaning. Noisy containers
// (scripts, styles, navigation chrome) are removed wholesale before
// the remaining tags are stripped.
var (
	titleTag    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	noiseBlocks = regexp.MustCompile(`(?is)<(script|style|noscript|iframe|nav|footer|header|head|svg)[^>]*>.*?</(script|style|noscript|iframe|nav|footer|header|head|svg)>`)
	comments    = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockBreaks = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article|ul|ol)[^>]*>`)
	lineBreaks  = regexp.MustCompile(`(?i)<(br|hr)\s*/?>`)
	anyTag      = regexp.MustCompile(`<[^>]+>`)
	runsOfSpace = regexp.MustCompile(`[ \t]+`)
)

// htmlToText strips markup and returns the page's visible text, one
// trimmed non-empty line per text block.
func htmlToText(content string) string {
	content = noiseBlocks.ReplaceAllString(content, "")
	content = comments.ReplaceAllString(content, "")
	content = blockBreaks.ReplaceAllString(content, "\n")
	content = lineBreaks.ReplaceAllString(content, "\n")
	content = anyTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = runsOfSpace.ReplaceAllString(content, " ")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// htmlTitle extracts the <title> text, falling back to the URL host
// when the page has no usable title.
func htmlTitle(content, pageURL string) string {
	matches := titleTag.FindStringSubmatch(content)
	if len(matches) > 1 {
		title := strings.TrimSpace(html.UnescapeString(matches[1]))
		if title != "" {
			return title
		}
	}
	return hostOf(pageURL)
}
