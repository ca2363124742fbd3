// Package report implements the sellers.json fetch status check: it reads
// the latest fetch state of a list of seller domains, classifies each domain
// and prints a console report, adding the raw fetch history when any domain
// is unhealthy.
package report

import (
	"context"
	"fmt"
	"io"
	"sellerscheck/pkg/domain"
	"sellerscheck/pkg/logger"
	"sellerscheck/pkg/serrors"
	"sellerscheck/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Connector opens the storage the report reads from. The report owns the
// returned handle and closes it before Run returns.
type Connector func(ctx context.Context) (storage.Storage, error)

// Options configure a report run.
type Options struct {
	// Title is printed in the report banner.
	Title string
	// Domains are the seller domains to check. They are normalized with
	// domain.NormalizeDomains before querying.
	Domains []string
	// Now returns the run timestamp printed in the banner. Defaults to time.Now.
	Now func() time.Time
}

// Row is one line of the status table.
type Row struct {
	domain.DomainSummary

	// Classification is the summary's status, computed once by Summarize.
	Classification domain.Status
}

// Summary is the classified result of a run.
type Summary struct {
	// Rows holds one row per domain, ordered by domain.
	Rows []Row
	// Succeeded is the number of rows whose status is domain.StatusSuccess.
	Succeeded int
	// Total is the number of rows.
	Total int
	// History holds the raw fetch attempts; it is only loaded when at least
	// one domain did not succeed.
	History []domain.FetchAttempt
}

// AllSucceeded reports whether every domain was classified as a success.
func (s Summary) AllSucceeded() bool {
	return s.Succeeded == s.Total
}

// Summarize classifies summaries and tallies the successes.
func Summarize(summaries []domain.DomainSummary) Summary {
	s := Summary{
		Rows:  make([]Row, 0, len(summaries)),
		Total: len(summaries),
	}
	for _, sum := range summaries {
		status := sum.Status()
		if status == domain.StatusSuccess {
			s.Succeeded++
		}
		s.Rows = append(s.Rows, Row{DomainSummary: sum, Classification: status})
	}

	return s
}

// Reporter runs the status check.
type Reporter struct {
	connect Connector
	options Options
}

// New creates a Reporter reading through connect.
func New(connect Connector, options Options) *Reporter {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &Reporter{
		connect: connect,
		options: options,
	}
}

// Run connects, prints the report to w and returns the classified result.
//
// The connection is released on every path. Both queries share one
// read-only transaction. When the aggregate query fails nothing has been
// written; when the history query fails the table has already been printed.
// Errors carry serrors.ErrConnection or serrors.ErrQuery.
func (r *Reporter) Run(ctx context.Context, w io.Writer) (Summary, error) {
	ctx = logger.WithFields(ctx, zap.String("runID", uuid.NewString()))

	domains := domain.NormalizeDomains(r.options.Domains)
	if len(domains) == 0 {
		return Summary{}, serrors.With(serrors.ErrBadRequest, "no domains to check")
	}

	logger.Debug(ctx, "connecting to storage", zap.Int("domains", len(domains)))
	strg, err := r.connect(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("could not open storage: %w", err)
	}
	defer func() {
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}()

	out := &printer{w: w}
	var result Summary

	err = strg.View(ctx, func(tx storage.AllStorage) error {
		summaries, err := tx.DomainSummaries(ctx, domains)
		if err != nil {
			return fmt.Errorf("could not get domain summaries: %w", err)
		}

		result = Summarize(summaries)
		logger.Info(ctx, "domains classified",
			zap.Int("succeeded", result.Succeeded),
			zap.Int("total", result.Total))

		out.header(r.options.Title, r.options.Now())
		out.table(result)

		if result.AllSucceeded() {
			out.allHealthy()

			return nil
		}

		out.unhealthy(result)
		history, err := tx.FetchHistory(ctx, domains)
		if err != nil {
			return fmt.Errorf("could not get fetch history: %w", err)
		}
		result.History = history
		out.details(history)

		return nil
	})
	if err != nil {
		return result, err
	}
	if out.err != nil {
		return result, fmt.Errorf("could not write report: %w", out.err)
	}

	return result, nil
}
