// Package kernel provides core domain primitives shared by the farmfreight
// domain model.
//
// The package currently holds UUID, a value object for aggregate identifiers
// with validation and comparison behavior. Primitives in this package are
// immutable and safe for concurrent use, and enforce their invariants at
// construction time.
package kernel
