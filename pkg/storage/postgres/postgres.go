package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sellerscheck/pkg/serrors"
	"sellerscheck/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options defines the PostgreSQL connection parameters.
type Options struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnectTimeout bounds establishing the connection; zero keeps the driver default
	ConnectTimeout time.Duration
}

// DB is the subset of database/sql used by this package. Both *sql.DB and
// *sql.Tx satisfy it.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu used to construct queries. Both a goqu
// database handle and a transaction handle implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
}

// PgSQL implements storage.Storage and storage.TxStorage for PostgreSQL using
// database/sql and goqu.
type PgSQL struct {
	// DB is either a *sql.DB or, inside a transaction, a *sql.Tx.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
	// Pool is the pgx pool backing DB. Nil for transactional handles.
	Pool *pgxpool.Pool
}

// Close closes the *sql.DB wrapper and the pgx pool. The pool is closed even
// when closing the wrapper fails.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		if cerr := db.Close(); cerr != nil {
			err = errors.Wrap(cerr, "could not close db")
		}
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err
}

// Rollback ends the current transaction. It returns storage.ErrNotInTx when
// p is not bound to a transaction.
func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return errors.Wrap(err, "could not rollback tx")
	}

	return nil
}

// Begin starts a read-only transaction. It returns storage.ErrAlreadyInTx when
// p is already bound to a transaction.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConnection, err, "could not begin read-only tx")
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// View runs cb inside a read-only transaction and always rolls it back.
func (p *PgSQL) View(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	return cb(tx)
}

// quote renders a libpq keyword/value so empty values and values containing
// spaces or quotes survive parsing.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)

	return "'" + v + "'"
}

// New connects to PostgreSQL through a pgx pool and verifies the connection
// with a ping. Any failure is reported as serrors.ErrConnection. The returned
// storage also exposes a database/sql wrapper for goqu.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		quote(options.Host),
		options.Port,
		quote(options.Username),
		quote(options.Database),
		quote(options.Password),
		quote(options.SslMode))
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConnection, err, "could not parse pgxpool config")
	}
	// every query shares one read-only transaction, so one connection is enough
	cfg.MaxConns = 1
	if options.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = options.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrConnection, err, "could not create pgx pool")
	}

	// pgxpool connects lazily; ping so an unreachable proxy or rejected
	// credentials surface here rather than in the first query.
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, serrors.Wrap(serrors.ErrConnection, err, "could not connect to %s:%d/%s",
			options.Host, options.Port, options.Database)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
