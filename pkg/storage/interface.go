// Package storage defines the read-only storage interfaces the status check
// relies on. Concrete backends (e.g. PostgreSQL) live in sub-packages.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"sellerscheck/pkg/domain"
)

// SellersFileStorage reads the sellers.json fetch records written by the
// ingestion pipeline.
type SellersFileStorage interface {
	// DomainSummaries returns one summary per requested domain, ordered by
	// domain ascending. Domains without any fetch record are still returned,
	// with a nil HTTPStatus and a zero SellerCount.
	DomainSummaries(ctx context.Context, domains []string) ([]domain.DomainSummary, error)
	// FetchHistory returns every raw fetch attempt of the requested domains,
	// ordered by domain ascending and then by fetched_at, most recent first.
	FetchHistory(ctx context.Context, domains []string) ([]domain.FetchAttempt, error)
}

// AllStorage groups every read capability of the application.
type AllStorage interface {
	SellersFileStorage
}

// TxStorage is a storage handle bound to a read-only transaction.
type TxStorage interface {
	AllStorage

	// Rollback ends the transaction. Read-only transactions have nothing to
	// commit, so this is the only way to finish one.
	Rollback() error
}

// Storage is a non-transactional handle owning the underlying connection.
type Storage interface {
	AllStorage

	// Close releases the underlying connection. The instance must not be used afterwards.
	Close() error

	// Begin starts a read-only transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// View runs cb inside a read-only transaction, giving every query the same
	// snapshot, and rolls the transaction back afterwards whatever cb returns.
	View(ctx context.Context, cb func(storage AllStorage) error) error
}
