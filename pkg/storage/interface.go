// Package storage declares the persistence interfaces used by the analyzer
// and the worker. pkg/storage/postgres implements them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage bundles every capability available both inside and outside a
// transaction.
type AllStorage interface {
	AnalysisStorage
	JobStorage
}

// TxStorage is a handle bound to an open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle. It owns the connection pool.
type Storage interface {
	AllStorage

	// Close releases the underlying pool.
	Close() error
	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
