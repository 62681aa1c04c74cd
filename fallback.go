package infographic

import (
	"regexp"
	"strings"
)

// fallbackNote tags results produced without the remote service.
const fallbackNote = "LOCAL FALLBACK - API unavailable"

const noContentText = "No meaningful content found."

var sentenceDelims = regexp.MustCompile(`[.\n!?]\s*`)

// Layout keywords, scanned in priority order: first matching category wins.
// The lists are a behavioral contract; renderers depend on them staying fixed.
var (
	comparisonKeywords = []string{"vs", "versus", "compare", "comparison", "difference"}
	hierarchyKeywords  = []string{"hierarchy", "priority", "level", "rank", "tier"}
	conceptKeywords    = []string{"concept", "idea", "central", "core", "main"}
)

// FallbackFromText synthesizes an infographic description from the user text
// alone, without any remote call. It never fails: even empty input yields a
// valid single-section result, tagged with the local-fallback note.
func FallbackFromText(userText string) Result {
	sentences := splitSentences(userText)

	var title string
	if len(sentences) > 0 {
		title = truncate(sentences[0], 40)
	} else {
		title = truncate(userText, 40)
	}
	title = strings.ToUpper(title)
	if title == "" {
		title = placeholderTitle
	}

	layout := LayoutProcessFlow
	lower := strings.ToLower(userText)
	switch {
	case containsAny(lower, comparisonKeywords):
		layout = LayoutComparison
	case containsAny(lower, hierarchyKeywords):
		layout = LayoutHierarchy
	case containsAny(lower, conceptKeywords):
		layout = LayoutConceptMap
	}

	var sections []Section
	if len(sentences) > 0 {
		sections = append(sections, Section{
			Role:         RoleMainConcept,
			Text:         truncate(sentences[0], 120),
			Color:        Palette[0],
			Emphasis:     EmphasisPrimary,
			VisualWeight: WeightHeavy,
		})
	}

	// Sentences 2-5 become supporting sections, colors cycling by position.
	for i := 1; i < len(sentences) && i < 5; i++ {
		role := RoleSupportingPoint
		if layout == LayoutProcessFlow {
			role = RoleProcessStep
		}
		sections = append(sections, Section{
			Role:         role,
			Text:         truncate(sentences[i], 100),
			Color:        Palette[i%len(Palette)],
			Emphasis:     EmphasisSecondary,
			VisualWeight: WeightMedium,
		})
	}

	if len(sections) == 0 {
		text := truncate(userText, 120)
		if text == "" {
			text = noContentText
		}
		sections = append(sections, Section{
			Role:         RoleMainConcept,
			Text:         text,
			Color:        ColorBlue,
			Emphasis:     EmphasisPrimary,
			VisualWeight: WeightHeavy,
		})
	}

	return Result{
		Title:      title,
		Layout:     layout,
		VisualFlow: FlowTopToBottom,
		Sections:   sections,
		Note:       fallbackNote,
	}
}

// splitSentences segments text on sentence punctuation and newlines and drops
// empty fragments.
func splitSentences(text string) []string {
	parts := sentenceDelims.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
