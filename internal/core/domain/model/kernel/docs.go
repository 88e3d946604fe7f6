// Package kernel provides the shared domain primitives used by the order
// model: currently the UUID value object that identifies orders and owners.
// Primitives here are immutable, validated on construction and safe for
// concurrent use.
package kernel
