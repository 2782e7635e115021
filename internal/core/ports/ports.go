package ports

import (
	"context"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// Blob keys understood by the persistent store.
const (
	BlobSettings    = "settings"
	BlobScanResults = "scan_results"
)

// Inventory supplies the point-in-time app snapshot the report is built
// from. How the records are collected is the provider's concern.
type Inventory interface {
	ListApps(ctx context.Context) ([]domain.AppRecord, error)
}

// BlobStore persists the opaque settings and scan-history payloads.
// GetBlob never fails on a missing or unparsable entry; it degrades to
// an empty map so report construction is never aborted by stored state.
type BlobStore interface {
	GetBlob(ctx context.Context, key string) (map[string]any, error)
	PutBlob(ctx context.Context, key string, blob map[string]any) error
}

// ReportHistory records generated reports for later reference.
type ReportHistory interface {
	RecordReport(ctx context.Context, rec domain.ReportRecord) error
	LastReport(ctx context.Context) (*domain.ReportRecord, error)
}

// StorageGate models the host platform's storage-permission decision.
// Request blocks until the grant is resolved; it has exactly two
// outcomes and no retry loop.
type StorageGate interface {
	Request(ctx context.Context) (bool, error)
}

// DocumentSerializer turns the typed section sequence into the final
// artifact bytes plus its page count.
type DocumentSerializer interface {
	Serialize(doc *domain.Document) ([]byte, int, error)
	Extension() string
}
