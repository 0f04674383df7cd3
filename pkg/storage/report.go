package storage

import (
	"context"
	"marketplace/pkg/domain"
)

// ReportStorage is the append-only store of reports.
type ReportStorage interface {
	// StoreReports inserts reports and returns them as stored.
	StoreReports(ctx context.Context, reports ...domain.Report) ([]domain.Report, error)
}
