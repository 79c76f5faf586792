package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/school_fee_app/internal/apperrors"
	"github.com/SscSPs/school_fee_app/internal/export"
	"github.com/gin-gonic/gin"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// outputFormat reads the ?format= query parameter. Empty means JSON.
func outputFormat(c *gin.Context) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(c.Query("format"))); f {
	case "", formatJSON:
		return formatJSON, nil
	case formatCSV:
		return formatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", apperrors.ErrValidation, f)
	}
}

// writeCSV streams t as a CSV attachment.
func writeCSV(c *gin.Context, logger *slog.Logger, t export.Table) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, t.Filename(formatCSV)))
	c.Header("Content-Type", export.ContentTypeCSV)
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, t); err != nil {
		// Headers are already sent; the client sees a truncated file.
		logger.Error("Failed to write CSV export", slog.String("title", t.Title), slog.String("error", err.Error()))
	}
}

// parseReportRange turns from/to query values into a half-open UTC range.
// A date-only "to" includes that whole day.
func parseReportRange(fromRaw, toRaw string) (time.Time, time.Time, error) {
	from, _, err := parseReportTime(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid from: %v", apperrors.ErrValidation, err)
	}
	to, dateOnly, err := parseReportTime(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid to: %v", apperrors.ErrValidation, err)
	}
	if dateOnly {
		to = to.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func parseReportTime(raw string) (time.Time, bool, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected YYYY-MM-DD or RFC3339, got %q", raw)
	}
	return t.UTC(), false, nil
}
