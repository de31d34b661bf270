package vanilla

// ChromeClass is a typed identifier for the structural CSS classes.
type ChromeClass string

const (
	ClassForm    ChromeClass = "richparams-form"
	ClassHeader  ChromeClass = "richparams-header"
	ClassFields  ChromeClass = "richparams-fields"
	ClassField   ChromeClass = "richparams-field"
	ClassActions ChromeClass = "richparams-actions"
	ClassErrors  ChromeClass = "richparams-errors"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"form":    string(ClassForm),
		"header":  string(ClassHeader),
		"fields":  string(ClassFields),
		"actions": string(ClassActions),
		"errors":  string(ClassErrors),
	}
}
