// Package order contains the order aggregate and its supporting value objects.
//
// The aggregate root is Order, created through NewOrder (fresh orders in
// Pending status) or RestoreOrder (reconstruction from persistence). Line
// entries are modeled by the Item value object; the lifecycle is modeled by
// Status, whose allowed transitions are held in a single explicit table
// rather than scattered conditionals.
package order
