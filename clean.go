package infographic

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?")

// Clean strips code-fence markup from a raw model reply and slices out the
// substring most likely to be a JSON object: everything from the first "{" to
// the last "}". When no such pair exists the trimmed reply is returned as-is
// and the downstream parse is expected to fail.
func Clean(raw string) string {
	cleaned := fencePattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first != -1 && last > first {
		return cleaned[first : last+1]
	}
	return cleaned
}
