// Package order provides domain entities and business logic for order
// management in the campus ordering system. It implements the Order aggregate
// root with lifecycle management and status progression.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, amounts,
//     pickup code, and lifecycle
//   - Status: The fixed five-state progression Pending -> Accepted ->
//     Preparing -> Ready -> Picked
//
// Key business rules:
//   - Orders must have a valid identifier and creation time
//   - Status is always a member of the fixed set
//   - The pickup code, once assigned, never changes
//   - Code-based acceptance only moves an order forward in the progression;
//     id-based acceptance and direct status updates overwrite unconditionally
//
// Item amounts are accepted as supplied by the storefront; the server does not
// recompute totals against items.
package order
