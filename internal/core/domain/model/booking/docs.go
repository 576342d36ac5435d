// Package booking contains the Booking aggregate and its lifecycle state
// machine.
//
// The forward chain is strictly linear: pending, bringing, pending_market,
// pending_payment, completed. The assigned driver may request the first two
// steps directly; uploading the sale bill enters pending_payment and the
// second of the two payment confirmations completes the booking. Cancellation
// is only possible while the booking is still pending. Every mutation appends
// to the booking's append-only history.
package booking
