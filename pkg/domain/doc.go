// Package domain contains the entities the sellers.json status check works
// with: the per-domain fetch summary, individual fetch attempts and the
// status classification derived from them. The types are free of
// infrastructure concerns so storage and reporting can share them.
package domain
