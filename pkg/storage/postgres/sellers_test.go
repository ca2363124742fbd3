package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"sellerscheck/pkg/serrors"
	"sellerscheck/pkg/storage"
	"sellerscheck/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"
)

func newMockPgSQL(t *testing.T) (*postgres.PgSQL, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.PgSQL{
		DB:      db,
		Builder: goqu.New("postgres", db),
	}, mock
}

var summaryColumns = []string{"domain", "latest_fetch", "http_status", "processed_at", "seller_count"}

func TestPgSQL_DomainSummaries(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	fetched := time.Date(2026, 1, 12, 3, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM unnest\(ARRAY\['advertising\.com', 'criteo\.com', 'opera\.com'\]::text\[\]\) AS d\(domain\) ` +
		`LEFT JOIN "raw_sellers_files" AS "rsf" ON \(LOWER\("rsf"\."domain"\) = "d"\."domain"\) ` +
		`LEFT JOIN \(SELECT LOWER\("domain"\) AS "domain", .+ FROM "sellers_catalog" ` +
		`WHERE \(LOWER\("domain"\) IN \('advertising\.com', 'criteo\.com', 'opera\.com'\)\) ` +
		`GROUP BY LOWER\("domain"\)\) AS "sc" ON \("sc"\."domain" = LOWER\("rsf"\."domain"\)\)`).
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("advertising.com", fetched, int64(200), fetched, int64(5)).
			AddRow("criteo.com", nil, nil, nil, int64(0)).
			AddRow("opera.com", fetched, int64(503), nil, int64(0)))

	got, err := pg.DomainSummaries(context.Background(), []string{"advertising.com", "criteo.com", "opera.com"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "advertising.com", got[0].Domain)
	require.NotNil(t, got[0].HTTPStatus)
	require.Equal(t, 200, *got[0].HTTPStatus)
	require.EqualValues(t, 5, got[0].SellerCount)
	require.True(t, fetched.Equal(*got[0].LatestFetch))

	require.Equal(t, "criteo.com", got[1].Domain)
	require.Nil(t, got[1].HTTPStatus)
	require.Nil(t, got[1].LatestFetch)
	require.Nil(t, got[1].ProcessedAt)
	require.Zero(t, got[1].SellerCount)

	require.Equal(t, 503, *got[2].HTTPStatus)
	require.Nil(t, got[2].ProcessedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_DomainSummaries_EmptyListSkipsQuery(t *testing.T) {
	pg, mock := newMockPgSQL(t)

	got, err := pg.DomainSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_DomainSummaries_QueryError(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	cause := errors.New(`relation "raw_sellers_files" does not exist`)

	mock.ExpectQuery(`unnest`).WillReturnError(cause)

	_, err := pg.DomainSummaries(context.Background(), []string{"yandex.com"})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrQuery)
	require.ErrorIs(t, err, cause)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_FetchHistory(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	newer := time.Date(2026, 1, 12, 3, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery(`SELECT LOWER\("domain"\) AS "domain", "http_status", "etag", "processed_at", "fetched_at" ` +
		`FROM "raw_sellers_files" WHERE \(LOWER\("domain"\) IN \('opera\.com', 'yandex\.com'\)\) ` +
		`ORDER BY LOWER\("domain"\) ASC, "fetched_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"domain", "http_status", "etag", "processed_at", "fetched_at"}).
			AddRow("opera.com", int64(503), nil, nil, newer).
			AddRow("opera.com", int64(200), `"abc"`, older, older).
			AddRow("yandex.com", int64(200), nil, newer, newer))

	got, err := pg.FetchHistory(context.Background(), []string{"opera.com", "yandex.com"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "opera.com", got[0].Domain)
	require.Equal(t, 503, *got[0].HTTPStatus)
	require.Nil(t, got[0].ETag)
	require.Nil(t, got[0].ProcessedAt)
	require.True(t, newer.Equal(*got[0].FetchedAt))

	require.NotNil(t, got[1].ETag)
	require.Equal(t, `"abc"`, *got[1].ETag)
	require.Equal(t, "yandex.com", got[2].Domain)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_FetchHistory_QueryError(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	mock.ExpectQuery(`FROM "raw_sellers_files"`).WillReturnError(sql.ErrConnDone)

	_, err := pg.FetchHistory(context.Background(), []string{"opera.com"})
	require.ErrorIs(t, err, serrors.ErrQuery)
	require.ErrorIs(t, err, sql.ErrConnDone)
}

func TestPgSQL_View_RunsInsideReadOnlyTxAndRollsBack(t *testing.T) {
	pg, mock := newMockPgSQL(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`unnest`).
		WillReturnRows(sqlmock.NewRows(summaryColumns).AddRow("criteo.com", nil, nil, nil, int64(0)))
	mock.ExpectRollback()

	err := pg.View(context.Background(), func(s storage.AllStorage) error {
		_, isTx := s.(*postgres.PgSQL).DB.(*sql.Tx)
		require.True(t, isTx)

		_, err := s.DomainSummaries(context.Background(), []string{"criteo.com"})

		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_View_RollsBackOnCallbackError(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := pg.View(context.Background(), func(storage.AllStorage) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_View_BeginErrorIsConnectionError(t *testing.T) {
	pg, mock := newMockPgSQL(t)
	mock.ExpectBegin().WillReturnError(errors.New("conn reset"))

	called := false
	err := pg.View(context.Background(), func(storage.AllStorage) error {
		called = true

		return nil
	})
	require.ErrorIs(t, err, serrors.ErrConnection)
	require.False(t, called)
}

func TestPgSQL_Close(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()
	pg := &postgres.PgSQL{DB: db, Builder: goqu.New("postgres", db)}
	require.NoError(t, pg.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_Close_ReturnsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cause := errors.New("connection reset by peer")
	mock.ExpectClose().WillReturnError(cause)
	pg := &postgres.PgSQL{DB: db, Builder: goqu.New("postgres", db)}

	err = pg.Close()
	require.ErrorIs(t, err, cause)
	require.ErrorContains(t, err, "could not close db")
	require.NoError(t, mock.ExpectationsWereMet())
}
