package infographic

import (
	"encoding/json"
	"strings"
)

// placeholderTitle is used whenever no usable title can be derived.
const placeholderTitle = "PROFESSIONAL INFOGRAPHIC"

// schemaKind discriminates between the current schema and the legacy
// type-based schema older model replies may still use.
type schemaKind int

const (
	schemaCurrent schemaKind = iota
	schemaLegacy
)

// detectSchema derives the discriminant from key presence: a reply is current
// iff it carries a visual_flow key or at least one section carries a role key.
func detectSchema(doc map[string]any) schemaKind {
	if _, ok := doc["visual_flow"]; ok {
		return schemaCurrent
	}
	for _, section := range sectionMaps(doc["sections"]) {
		if _, ok := section["role"]; ok {
			return schemaCurrent
		}
	}
	return schemaLegacy
}

// Normalize converts a parsed model reply into a Result. Replies already in
// the current schema pass through unchanged; legacy replies are upgraded
// section by section using positional and type-based rules. Deterministic:
// identical input always yields identical output.
func Normalize(doc map[string]any) Result {
	if detectSchema(doc) == schemaCurrent {
		return resultFromDocument(doc)
	}

	title := stringField(doc, "title", placeholderTitle)
	old := sectionMaps(doc["sections"])

	types := make([]string, 0, len(old))
	for _, section := range old {
		types = append(types, stringField(section, "type", ""))
	}

	layout := LayoutProcessFlow
	flow := FlowTopToBottom
	switch {
	case containsType(types, "arrow"):
		if len(old) <= 4 {
			flow = FlowLeftToRight
		}
	case anyTypeContains(types, "list"):
		layout = LayoutConceptMap
	case len(old) > 4:
		layout = LayoutHierarchy
	}

	sections := make([]Section, 0, len(old))
	for i, section := range old {
		oldType := stringField(section, "type", "box")

		var role Role
		var emphasis Emphasis
		var weight Weight
		switch {
		case (oldType == "box" || oldType == "icon_box") && i == 0:
			role, emphasis, weight = RoleMainConcept, EmphasisPrimary, WeightHeavy
		case oldType == "arrow" || oldType == "connector":
			role, emphasis, weight = RoleConnector, EmphasisTertiary, WeightLight
		case oldType == "process" || oldType == "list":
			role, emphasis, weight = RoleProcessStep, EmphasisSecondary, WeightMedium
		default:
			role, emphasis, weight = RoleSupportingPoint, EmphasisSecondary, WeightMedium
		}

		sections = append(sections, Section{
			Role:         role,
			Text:         stringField(section, "text", ""),
			Color:        Color(stringField(section, "color", string(ColorBlue))),
			Emphasis:     emphasis,
			VisualWeight: weight,
		})
	}

	return Result{
		Title:      title,
		Layout:     layout,
		VisualFlow: flow,
		Sections:   sections,
	}
}

// resultFromDocument round-trips a current-schema document through JSON into
// the typed Result.
func resultFromDocument(doc map[string]any) Result {
	var out Result
	if raw, err := json.Marshal(doc); err == nil {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

// sectionMaps extracts the object-shaped entries of a sections value,
// tolerating absent or malformed lists.
func sectionMaps(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func stringField(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func anyTypeContains(types []string, substr string) bool {
	for _, t := range types {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}
