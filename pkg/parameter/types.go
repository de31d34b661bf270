package parameter

// Type is the server-declared parameter type. It drives input dispatch; values
// outside the known constants are legal and fall back to free text.
type Type string

const (
	TypeString     Type = "string"
	TypeNumber     Type = "number"
	TypeBool       Type = "bool"
	TypeListString Type = "list(string)"
)

// Option is one entry of an enumerated parameter. Name is the display text and
// Value is what gets submitted; the two may differ.
type Option struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Value       string `json:"value" yaml:"value"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Schema describes a single rich parameter or template variable. Name is the
// identity of the schema within a batch.
type Schema struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Icon         string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Type         Type     `json:"type" yaml:"type"`
	Options      []Option `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue string   `json:"default_value" yaml:"default_value"`
	Sensitive    bool     `json:"sensitive" yaml:"sensitive"`
	Required     bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Value        string   `json:"value" yaml:"value"`
}

// Value is a resolved name/value pair handed back to the host. It doubles as
// the VariableValue entry of a template version request.
type Value struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// HasOptions reports whether the schema declares enumerated options.
func (s Schema) HasOptions() bool {
	return len(s.Options) > 0
}

// Names returns the schema names in order.
func Names(schemas []Schema) []string {
	if len(schemas) == 0 {
		return nil
	}
	out := make([]string, len(schemas))
	for i, s := range schemas {
		out[i] = s.Name
	}
	return out
}
