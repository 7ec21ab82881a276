// Package order provides domain entities and business logic for food-order
// management in the quickdish system. It implements the Order aggregate root
// with its line items, the status tagged union, and the role-gated status
// transition table.
//
// The package includes:
//   - Order: The aggregate root holding identity, items, price paid, and status
//   - Item / SelectedOption: Line items referencing menus and selected options
//   - Status: A discriminated union of status payloads (Ordered, Preparing,
//     Ready, Settled, Cancelled) keyed by StatusFlag
//   - NextStatus: The (role, current status, requested update) transition table
//
// Key business rules:
//   - Orders start in ORDERED with at least one item; price is fixed at creation
//   - Customers may cancel only from ORDERED and settle only from READY
//   - Merchants drive ORDERED -> PREPARING -> READY and may cancel from
//     ORDERED or PREPARING; merchants never settle
//   - SETTLED and CANCELLED are terminal
//
// Status workflow:
//
//	ORDERED ──merchant──> PREPARING ──merchant──> READY ──customer──> SETTLED
//	   │                      │
//	   └──────────────────────┴─────> CANCELLED
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
