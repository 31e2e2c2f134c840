package markdown

// FieldGroups lists the keys the CMS editor uses to group related fields.
// Their mapping values are merged into the top level by Normalize.
var FieldGroups = []string{
	"basic_info",
	"media",
	"embed",
	"categorization",
	"display",
	"download",
}

func isFieldGroup(key string) bool {
	for _, group := range FieldGroups {
		if group == key {
			return true
		}
	}
	return false
}

// Normalize flattens grouped frontmatter into a single level. Group keys whose
// value is a mapping are merged in document order, later keys overwriting
// earlier ones; every other key is copied through untouched. Normalizing an
// already flat mapping returns an equal mapping.
func Normalize(fm FrontMatter) FrontMatter {
	out := NewFrontMatter(fm.Len())
	for _, key := range fm.keys {
		value := fm.values[key]
		if isFieldGroup(key) {
			if group, ok := value.(FrontMatter); ok {
				for _, inner := range group.keys {
					out.Set(inner, group.values[inner])
				}
				continue
			}
		}
		out.Set(key, value)
	}
	return out
}
