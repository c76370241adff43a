// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through five states:
//
//	open ──> accepted ──> in_progress ──> completed
//	  ^          │             │
//	  └──────────┴─────────────┘ (release by customer or specialist)
//
//	open/accepted/in_progress ──> cancelled (customer only)
//
// completed and cancelled are terminal. Every transition is validated twice:
// the aggregate enforces actor authorization and the legal transition table,
// and the persistence layer re-checks the expected current status at write
// time so concurrent writers cannot both win (see ports.OrderRepository).
package order
