package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin and WithTx on a handle that is
	// already transactional. Transactions do not nest.
	ErrAlreadyInTx = errors.New("storage: already in a transaction")
	// ErrNotInTx is returned by Commit, Rollback and the per-publication
	// incidence lock when called outside a transaction.
	ErrNotInTx = errors.New("storage: not in a transaction")
	// ErrTxConflict is returned from a transaction callback when a row it read
	// changed before it could be written. WithTx re-runs the transaction.
	ErrTxConflict = errors.New("storage: row changed concurrently")
)
