// Package orchestrator wires the schema loader, optional transformers and the
// renderer registry into one Generate call. Defaults (filesystem loader,
// vanilla renderer) let callers start with a single constructor.
package orchestrator
