// Package sim provides the discrete-time simulation engine for a bank's
// service floor over a calendar month.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - client.go, clerk.go: the two interacting state machines
//   - bank.go: bounded-queue admission and the harvest-then-assign tick
//   - system.go: the minute loop, calendar mode switching, arrival synthesis,
//     and statistics recomputation
//
// # Architecture
//
// The engine is single-threaded and advances strictly one logical minute at a
// time. System.Step is the atomic unit of forward progress; multi-minute
// advances are bounded loops over it. Randomness comes from one shared,
// seedable generator (Randomizer) so that identically-seeded runs produce
// identical trajectories.
//
// The presentation layer is a collaborator, not a dependency: the core emits
// two fire-and-forget notifications through the Observer interface and works
// unchanged with the no-op implementation.
package sim
