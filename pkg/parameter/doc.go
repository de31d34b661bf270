// Package parameter defines the read-only schema the console receives for a
// template's rich parameters and template variables. A Schema describes one
// configurable value: its type, optional enumerated options, declared default,
// last persisted value and whether it is sensitive. The engine never mutates a
// Schema; resolvers and input fields derive their state from it.
//
// Struct tags follow the backend API so payloads fetched by the host can be
// decoded directly from JSON or YAML.
package parameter
