// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the marketplace.
//
// The package includes:
//   - ClaimPolicy: a domain service that decides whether a specialist account
//     may claim an open order and executes the assignment on the aggregate
//
// Domain services coordinate between aggregates, implementing business logic
// that spans more than one aggregate root.
package services
