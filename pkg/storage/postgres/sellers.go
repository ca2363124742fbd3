package postgres

import (
	"context"
	"sellerscheck/pkg/domain"
	"sellerscheck/pkg/serrors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	rawSellersFilesTable = "raw_sellers_files"
	sellersCatalogTable  = "sellers_catalog"
)

// requestedDomains renders the domain list as a one-column relation d(domain),
// so the caller's list drives the aggregate rather than whatever the table holds.
func requestedDomains(domains []string) exp.LiteralExpression {
	args := make([]interface{}, len(domains))
	for i, d := range domains {
		args[i] = d
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(domains)), ", ")

	return goqu.L("unnest(ARRAY["+placeholders+"]::text[]) AS d(domain)", args...)
}

// lowerDomain wraps col in LOWER() so stored domains match the lowercased
// request regardless of how ingestion cased them.
func lowerDomain(col interface{}) exp.SQLFunctionExpression {
	return goqu.Func("LOWER", col)
}

// DomainSummaries returns the latest fetch state and distinct seller count of
// every requested domain, ordered by domain. Domains never fetched are
// included with a NULL status and a zero seller count.
func (p *PgSQL) DomainSummaries(ctx context.Context, domains []string) ([]domain.DomainSummary, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	// restricted to the requested domains so only their catalog rows are aggregated
	sellers := p.Builder.From(sellersCatalogTable).
		Select(
			lowerDomain(goqu.C("domain")).As("domain"),
			goqu.COUNT(goqu.DISTINCT("seller_id")).As("seller_count"),
		).
		Where(lowerDomain(goqu.C("domain")).In(domains)).
		GroupBy(lowerDomain(goqu.C("domain")))

	ds := p.Builder.From(requestedDomains(domains)).
		LeftJoin(
			goqu.T(rawSellersFilesTable).As("rsf"),
			goqu.On(lowerDomain(goqu.I("rsf.domain")).Eq(goqu.I("d.domain"))),
		).
		LeftJoin(
			sellers.As("sc"),
			goqu.On(goqu.I("sc.domain").Eq(lowerDomain(goqu.I("rsf.domain")))),
		).
		Select(
			goqu.I("d.domain").As("domain"),
			goqu.MAX(goqu.I("rsf.fetched_at")).As("latest_fetch"),
			// status of the latest fetch, not the numerically largest one
			goqu.L(`(ARRAY_AGG("rsf"."http_status" ORDER BY "rsf"."fetched_at" DESC NULLS LAST))[1]`).As("http_status"),
			goqu.MAX(goqu.I("rsf.processed_at")).As("processed_at"),
			goqu.COALESCE(goqu.MAX(goqu.I("sc.seller_count")), 0).As("seller_count"),
		).
		GroupBy(goqu.I("d.domain")).
		Order(goqu.I("d.domain").Asc())

	var rows []PgDomainSummary
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrQuery, err, "could not fetch domain summaries from pg")
	}

	return pgSummariesToDomain(rows), nil
}

// FetchHistory returns every raw fetch of the requested domains, grouped by
// domain and most recent first within a domain.
func (p *PgSQL) FetchHistory(ctx context.Context, domains []string) ([]domain.FetchAttempt, error) {
	if len(domains) == 0 {
		return nil, nil
	}

	ds := p.Builder.From(rawSellersFilesTable).
		Select(
			lowerDomain(goqu.C("domain")).As("domain"),
			goqu.C("http_status"),
			goqu.C("etag"),
			goqu.C("processed_at"),
			goqu.C("fetched_at"),
		).
		Where(lowerDomain(goqu.C("domain")).In(domains)).
		Order(lowerDomain(goqu.C("domain")).Asc(), goqu.C("fetched_at").Desc())

	var rows []PgFetchAttempt
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrQuery, err, "could not fetch sellers file history from pg")
	}

	return pgAttemptsToDomain(rows), nil
}
