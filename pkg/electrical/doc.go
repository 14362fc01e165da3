// Package electrical implements closed-form conversions from
// power-distribution-equipment nameplate data to the electrical
// parameters a grid-calculation engine consumes.
//
// # Components
//
// The package follows a one-concern-per-file split:
//
//   - noload.go: relative no-load current of a transformer
//   - reactive.go: reactive power and shunt susceptance conversions
//   - windpower.go: wind-turbine power curve with hub-height correction
//   - pvefficiency.go: PV inverter efficiency-descriptor adjustment
//
// # Numeric Policy
//
// Every function is a pure transform: no state, no I/O, no logging,
// bounded constant-time execution, safe for concurrent callers. NaN in
// any numeric input propagates to a NaN result without raising — a NaN
// means "value unknown, skip" to downstream aggregation, not "invalid",
// and must never halt a batch conversion run. The single exception that
// does error is a physically infeasible nameplate quantity (see
// RelativeNoLoadCurrent), which indicates corrupt source data that the
// caller has to reject rather than carry forward.
package electrical
