package domain

import (
	"strings"
	"time"
)

// DomainSummary is the aggregated view of one seller domain: its latest fetch
// and how many distinct sellers the catalog holds for it.
type DomainSummary struct {
	// Domain is the seller's advertising domain, e.g. "advertising.com".
	Domain string
	// LatestFetch is the most recent fetched_at; nil when the domain was never fetched.
	LatestFetch *time.Time
	// HTTPStatus is the status code of the most recent fetch; nil when unknown.
	HTTPStatus *int
	// ProcessedAt is the most recent processing time; nil when never processed.
	ProcessedAt *time.Time
	// SellerCount is the number of distinct seller IDs in the catalog. Never negative.
	SellerCount int64
}

// Status classifies the summary. See Classify.
func (s DomainSummary) Status() Status {
	return Classify(s.HTTPStatus, s.SellerCount)
}

// FetchAttempt is a single raw sellers.json fetch as recorded by the ingestion pipeline.
type FetchAttempt struct {
	Domain      string
	HTTPStatus  *int
	ETag        *string
	ProcessedAt *time.Time
	FetchedAt   *time.Time
}

// NormalizeDomains trims and lowercases every entry, drops empty ones and
// removes duplicates while keeping the first occurrence's position.
func NormalizeDomains(domains []string) []string {
	seen := make(map[string]struct{}, len(domains))
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out
}
