package primary

import (
	"context"
	"io"

	"github.com/example/firmos/internal/core/metrics"
)

// ReportService defines the primary port for spreadsheet exports.
type ReportService interface {
	// ExportWeekly writes the current week's report, the cash ledger and
	// the task logs as a workbook.
	ExportWeekly(ctx context.Context, kind metrics.WindowKind, w io.Writer) error
}
