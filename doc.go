// Package jsonschema implements a JSON Schema Draft 2020-12 validator.
//
// Schemas are parsed into an append-only arena of schema records addressed
// by integer index, then validated against a decoded JSON instance
// by running the handlers of the keywords each record actually used, as
// recorded in its bit-set. The
// design favors a data-driven keyword dispatch table over a long
// type-switch: adding a keyword means adding one entry to the table in
// dispatch.go, not touching the parser or the validator.
package jsonschema
