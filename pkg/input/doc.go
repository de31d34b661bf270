// Package input selects the presentation variant for a parameter and owns the
// edit state of a rendered field.
//
// Dispatch is a fixed-priority match over the schema: a "bool" type always
// yields the binary choice, otherwise declared options yield the enumerated
// choice, and everything else degrades to free text. Dispatch never fails.
//
// Every applied edit updates the field's private state and then invokes the
// field's ChangeFunc synchronously with the same string. Notifications are
// neither batched nor deduplicated; hosts must tolerate repeated values.
//
// A Field is owned by a single caller and is not safe for concurrent use.
package input
