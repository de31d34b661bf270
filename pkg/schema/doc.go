// Package schema loads the ordered list of parameter schemas a form session is
// built from. Sources can be files on disk, entries in an fs.FS, or HTTP
// endpoints; HTTP stays disabled unless a client is configured, keeping the
// loader offline-first.
//
// Documents may be JSON or YAML and either a bare list of schemas or an object
// wrapping the list under "parameters", "rich_parameters" or "variables".
package schema
