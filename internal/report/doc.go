// Package report renders flow results for people and for machines.
//
// Text output follows the wording of the interactive solver. Structured
// output wraps each result in a [Record] carrying the case name, the inputs
// and either the outputs or the error, and encodes a list of records as
// JSON, YAML or TOML.
package report
