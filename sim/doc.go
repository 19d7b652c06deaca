// Package sim provides the discrete-time SIR epidemic simulation core.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - state.go: the (S, I, R) compartment triple and the immunization transform
//   - simulator.go: the forward-Euler update rule and the daily run loop
//   - sweep.go: 1-D and 2-D parameter sweep drivers
//
// Supporting pieces:
//   - system.go: the per-run configuration bundle (initial state, horizon, rates)
//   - timeseries.go: the append-only daily trajectory
//   - logistic.go: generalized logistic curve mapping prevention spending to a
//     contact-rate reduction
//   - metrics.go: run summaries (total infected, peak infected)
//
// The core is deterministic and purely sequential. Each sweep iteration
// constructs its own System and TimeSeries; nothing is shared across
// iterations.
package sim
