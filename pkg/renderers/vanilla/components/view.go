package components

// FieldView is the template payload of one parameter control. JSON tags are
// the keys templates see.
type FieldView struct {
	ID          string       `json:"id"`
	LabelID     string       `json:"label_id"`
	Name        string       `json:"name"`
	Variant     string       `json:"variant"`
	Value       string       `json:"value"`
	InputType   string       `json:"input_type,omitempty"`
	InputMode   string       `json:"input_mode,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Required    bool         `json:"required"`
	Sensitive   bool         `json:"sensitive"`
	Disabled    bool         `json:"disabled"`
	Invalid     bool         `json:"invalid"`
	Choices     []ChoiceView `json:"choices,omitempty"`
}

// ChoiceView is one radio entry of a choice control.
type ChoiceView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	IconHTML string `json:"icon_html,omitempty"`
	Checked  bool   `json:"checked"`
}
