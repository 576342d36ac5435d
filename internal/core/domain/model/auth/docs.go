// Package auth holds the authenticated principal value object and the
// authorization gate: stateless role and ownership predicates every command
// evaluates before mutating anything. A failed predicate yields a Forbidden
// error and the operation stops with no side effects.
package auth
