// SPDX-License-Identifier: MIT

// Package sim drives a pollution field over time.
//
// A Simulation owns the single current *field.Field. Each Step optionally
// injects emissions from its samplers, then replaces the current field with
// the result of Diffuse. Presentation code reads Field() between steps and
// never writes to it; control code changes the rate with SetRate and adds
// sources with AddSource or InjectRandom.
//
// Configuration comes from Config (YAML, see LoadConfig) with documented
// defaults in DefaultConfig. A Simulation is not safe for concurrent use.
package sim
