// Package submission aggregates edited template variables into the
// CreateTemplateVersionRequest payload consumed by the backend.
//
// A Session owns one input field per variable, seeded by the resolver. Edits
// are correlated with schemas by variable name, so the payload stays correct
// even if a host replays edits in a different order than the form shows them.
// The payload lists values in the schema order captured when the session was
// created.
package submission
