// Package console serves the template-variables form over HTTP. GET renders the
// variables of a template as an HTML form; POST correlates the submitted values
// with the variables by name and answers with the CreateTemplateVersionRequest
// payload the backend expects.
package console
