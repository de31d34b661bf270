// Package render holds the contracts shared by the parameter renderers: the
// Renderer interface, a concurrency-safe Registry, the Form input, per-request
// RenderOptions, hidden fields and error mapping.
package render
