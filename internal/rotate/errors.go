// Package rotate reorients bridge boards so that a chosen seat becomes
// the dealing/opening seat, keeping every seat-dependent field of the
// board consistent under the permutation: dealer, vulnerability, card
// holdings, declarer, auction and play seats, score prefix, and
// direction words in commentary.
package rotate

import "errors"

var (
	// ErrMissingBasisData marks a board that lacks the attribute the
	// selected basis mode needs. Per-board: the driver records it and
	// keeps going.
	ErrMissingBasisData = errors.New("missing rotation basis data")

	// ErrUnrecognizedSeat marks a basis attribute whose value is not
	// one of the four seat letters. Per-board, like ErrMissingBasisData.
	ErrUnrecognizedSeat = errors.New("unrecognized seat token")

	// ErrInvalidPattern marks a malformed pattern string. Fatal for
	// that pattern's whole run, detected before any board is touched.
	ErrInvalidPattern = errors.New("invalid rotation pattern")
)
