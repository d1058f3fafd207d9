// Package config loads ease configuration files.
//
// Files are YAML or TOML. Either way the raw document is unified with an
// embedded CUE schema, which rejects unknown keys and fills defaults,
// before being decoded into a Config.
//
// Error codes (E200-E209):
//   - E200: file could not be read
//   - E201: file could not be parsed
//   - E202: document does not match the schema
//   - E203: document is well-formed but inconsistent
//   - E204: unsupported file format
package config
