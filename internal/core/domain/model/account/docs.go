// Package account contains the Account aggregate: registered users in the
// farmer, owner or driver role, together with their review profile. Reviews
// are append-only; the average rating and review count are derived inside the
// aggregate so they can never drift from the review list.
package account
