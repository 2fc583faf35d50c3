package files

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDramaName is the fallback title when nothing usable remains after
// stripping release markers from the first filename.
const DefaultDramaName = "New Drama Post"

var (
	reExtension = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|mov|wmv|flv|webm|ts|zip|rar|7z)$`)
	reBrackets  = regexp.MustCompile(`\[[^\]]*\]`)
	reParens    = regexp.MustCompile(`\([^)]*\)`)
	reSeparator = regexp.MustCompile(`[-_.]+`)
	reEpisode   = regexp.MustCompile(`(?i)ep?\d+`)
	reSeason    = regexp.MustCompile(`(?i)s\d+`)
	reQuality   = regexp.MustCompile(`(?i)\b\d{3,4}[pi]\b`)

	titleCaser = cases.Title(language.English)
)

// ExtractDramaName derives a human-readable title from an uploaded filename
// by stripping the usual release markers: extension, bracketed and
// parenthesized annotations, episode/season numbers, quality tags and
// separator characters. This is a best-effort heuristic, not a guaranteed
// extraction; anything it cannot handle falls back to DefaultDramaName.
func ExtractDramaName(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return DefaultDramaName
	}

	name := reExtension.ReplaceAllString(filename, " ")
	name = reBrackets.ReplaceAllString(name, " ")
	name = reParens.ReplaceAllString(name, " ")
	name = reSeparator.ReplaceAllString(name, " ")
	name = reEpisode.ReplaceAllString(name, " ")
	name = reSeason.ReplaceAllString(name, " ")
	name = reQuality.ReplaceAllString(name, " ")

	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return DefaultDramaName
	}

	return titleCaser.String(name)
}
