// Package order provides the Order aggregate and its business rules.
//
// The package includes:
//   - Order: the aggregate root tying an owner, a customer name, line items
//     and a total amount to a lifecycle status
//   - LineItem: a validated product entry (name, quantity, unit price)
//   - Status: a state machine enforcing the order workflow
//     pending -> processing -> completed, with cancellation from pending only
//
// Key business rules:
//   - Orders carry at least one line item; quantities are >= 1 and unit
//     prices are >= 0
//   - The total amount must match the sum of line item subtotals within an
//     absolute tolerance of 0.01
//   - Completed orders accept no further changes, to details or status
//   - Completed and cancelled are terminal statuses
package order
