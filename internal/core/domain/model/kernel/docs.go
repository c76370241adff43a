// Package kernel contains shared value objects used across all domain
// aggregates: validated identifiers and geographic coordinates. Types in this
// package are immutable and safe for concurrent use; their zero values are
// invalid and must be built through the provided constructors.
package kernel
