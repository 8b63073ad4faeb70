// Package domain contains the value objects and errors shared by the
// pipeflow calculator and its callers.
//
// This package is the innermost layer. It has no dependencies on logging,
// configuration or I/O and holds only data and the rules that classify it.
//
// # Entities
//
//   - [FlowParameters]: fluid and pipe inputs for a single computation
//   - [FlowResult]: Reynolds number, friction factor and derived quantities
//   - [Regime] and [PipeType]: labels attached to a friction factor
//
// # Units
//
// All quantities are SI except pipe roughness, which is given in
// micrometres the way pipe catalogues list it.
package domain
