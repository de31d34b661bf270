package parameter

import "strings"

// Label is the display header of a parameter input.
type Label struct {
	// Title is the emphasised line: the description when one is set,
	// otherwise the parameter name.
	Title string
	// Name is only populated for detailed labels, shown above Title.
	Name string
	// Icon is only populated for detailed labels.
	Icon string
	// Detailed is true when both name and description are present.
	Detailed bool
}

// LabelFor builds the label shown next to a parameter input. Parameters with a
// name and a description get the detailed form (icon, name, description);
// anything else shows the bare name.
func LabelFor(s Schema) Label {
	name := strings.TrimSpace(s.Name)
	desc := strings.TrimSpace(s.Description)
	if name != "" && desc != "" {
		return Label{
			Title:    desc,
			Name:     name,
			Icon:     strings.TrimSpace(s.Icon),
			Detailed: true,
		}
	}
	return Label{Title: name}
}
