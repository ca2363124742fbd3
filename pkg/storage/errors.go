package storage

import "errors"

var (
	// ErrAlreadyInTx is returned when a transaction is started from a handle
	// that is already bound to one.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-only operation is called on a
	// handle that is not bound to a transaction.
	ErrNotInTx = errors.New("not in tx")
)
