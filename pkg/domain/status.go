package domain

import "net/http"

// Status is the outcome category of a domain's latest sellers.json fetch.
type Status string

const (
	// StatusSuccess means the latest fetch returned 200 and the catalog holds sellers.
	StatusSuccess Status = "SUCCESS"
	// StatusFetchedNoSellers means the latest fetch returned 200 but no sellers were catalogued.
	StatusFetchedNoSellers Status = "FETCHED_NO_SELLERS"
	// StatusHTTPError means the latest fetch returned a 4xx or 5xx status.
	StatusHTTPError Status = "HTTP_ERROR"
	// StatusNotFetched covers everything else: no fetch recorded, a NULL status,
	// or a status below 400 other than 200.
	StatusNotFetched Status = "NOT_FETCHED"
)

// Label returns the console label of the status, marker glyph included.
func (s Status) Label() string {
	switch s {
	case StatusSuccess:
		return "✅ SUCCESS"
	case StatusFetchedNoSellers:
		return "⚠️ FETCHED (no sellers)"
	case StatusHTTPError:
		return "❌ HTTP ERROR"
	default:
		return "❌ NOT FETCHED"
	}
}

// Classify maps an HTTP status and a seller count to a Status. Rules are
// evaluated in order and the first match wins, so every input has exactly
// one result.
func Classify(httpStatus *int, sellerCount int64) Status {
	switch {
	case httpStatus != nil && *httpStatus == http.StatusOK && sellerCount > 0:
		return StatusSuccess
	case httpStatus != nil && *httpStatus == http.StatusOK:
		return StatusFetchedNoSellers
	case httpStatus != nil && *httpStatus >= http.StatusBadRequest:
		return StatusHTTPError
	default:
		return StatusNotFetched
	}
}
