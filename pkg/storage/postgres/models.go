package postgres

import (
	"database/sql"
	"sellerscheck/pkg/domain"
	"time"
)

// PgDomainSummary is one row of the per-domain aggregate query.
type PgDomainSummary struct {
	Domain      string        `db:"domain"`
	LatestFetch sql.NullTime  `db:"latest_fetch"`
	HTTPStatus  sql.NullInt64 `db:"http_status"`
	ProcessedAt sql.NullTime  `db:"processed_at"`
	SellerCount int64         `db:"seller_count"`
}

// PgFetchAttempt is one row of raw_sellers_files.
type PgFetchAttempt struct {
	Domain      string         `db:"domain"`
	HTTPStatus  sql.NullInt64  `db:"http_status"`
	ETag        sql.NullString `db:"etag"`
	ProcessedAt sql.NullTime   `db:"processed_at"`
	FetchedAt   sql.NullTime   `db:"fetched_at"`
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	return &t.Time
}

func nullInt(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)

	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func (p *PgDomainSummary) ToDomain() domain.DomainSummary {
	return domain.DomainSummary{
		Domain:      p.Domain,
		LatestFetch: nullTime(p.LatestFetch),
		HTTPStatus:  nullInt(p.HTTPStatus),
		ProcessedAt: nullTime(p.ProcessedAt),
		SellerCount: p.SellerCount,
	}
}

func (p *PgFetchAttempt) ToDomain() domain.FetchAttempt {
	return domain.FetchAttempt{
		Domain:      p.Domain,
		HTTPStatus:  nullInt(p.HTTPStatus),
		ETag:        nullString(p.ETag),
		ProcessedAt: nullTime(p.ProcessedAt),
		FetchedAt:   nullTime(p.FetchedAt),
	}
}

func pgSummariesToDomain(rows []PgDomainSummary) []domain.DomainSummary {
	out := make([]domain.DomainSummary, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func pgAttemptsToDomain(rows []PgFetchAttempt) []domain.FetchAttempt {
	out := make([]domain.FetchAttempt, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
