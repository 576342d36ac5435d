// Package vehicle contains the Vehicle aggregate, which doubles as the
// capacity ledger: remaining weight capacity, booking cross-references and
// the capacity-derived status all change together through Reserve and
// Release, so they can be persisted as one atomic mutation.
package vehicle
