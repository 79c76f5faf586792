package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/export"
	"github.com/SscSPs/school_fee_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBack(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	r := csv.NewReader(buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name  string
		table export.Table
		want  [][]string
	}{
		{
			name: "header rows and footer",
			table: export.Table{
				Header: []string{"a", "b"},
				Rows:   [][]string{{"1", "2"}, {"3", "4"}},
				Footer: [][]string{{"total", "10"}},
			},
			want: [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}, {"total", "10"}},
		},
		{
			name: "cells with commas and quotes survive",
			table: export.Table{
				Header: []string{"note"},
				Rows:   [][]string{{`paid "in full", thanks`}},
			},
			want: [][]string{{"note"}, {`paid "in full", thanks`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.WriteCSV(&buf, tt.table))
			assert.Equal(t, tt.want, readBack(t, &buf))
		})
	}
}

func TestTableFilename(t *testing.T) {
	assert.Equal(t, "collections-2024-06-01-to-2024-07-01.csv", export.Table{Title: "Collections 2024-06-01 to 2024-07-01"}.Filename("csv"))
	assert.Equal(t, "export.csv", export.Table{}.Filename("csv"))
}

func TestStatementTable_TotalsMatchLines(t *testing.T) {
	original := decimal.RequireFromString("500")
	history := []domain.PaymentEvent{
		{PaidAmount: decimal.RequireFromString("0.10"), ConcessionAmount: decimal.Zero, PaidAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ReferenceNo: "R1"},
		{PaidAmount: decimal.RequireFromString("0.20"), ConcessionAmount: decimal.RequireFromString("9.70"), PaidAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), ReferenceNo: "R2"},
	}
	result, err := accounting.ComputeBalance(original, history)
	require.NoError(t, err)

	table := export.StatementTable(&domain.Statement{
		Account: domain.ChargeAccount{PayerID: "STU-1", FeeHead: "Bus Fee", OriginalAmount: original},
		Lines:   accounting.BuildStatementLines(original, history),
		Result:  result,
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"2024-06-01", "R1", "", "0.10", "0.00", "499.90"}, table.Rows[0])
	assert.Equal(t, "490.00", table.Rows[1][5])
	assert.Equal(t, []string{"Total", "", "", "0.30", "9.70", "490.00"}, table.Footer[1])
}

func TestStatementTable_OverappliedFooterMatchesLastLine(t *testing.T) {
	original := decimal.RequireFromString("100")
	history := []domain.PaymentEvent{
		{PaidAmount: decimal.RequireFromString("80"), ConcessionAmount: decimal.Zero, PaidAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ReferenceNo: "R1"},
		{PaidAmount: decimal.RequireFromString("30"), ConcessionAmount: decimal.Zero, PaidAt: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), ReferenceNo: "R2"},
	}
	result, err := accounting.ComputeBalance(original, history)
	require.NoError(t, err)

	table := export.StatementTable(&domain.Statement{
		Account: domain.ChargeAccount{PayerID: "STU-1", FeeHead: "Bus Fee", OriginalAmount: original},
		Lines:   accounting.BuildStatementLines(original, history),
		Result:  result,
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "-10.00", table.Rows[1][5])
	assert.Equal(t, []string{"Total", "", "", "110.00", "0.00", "0.00"}, table.Footer[1])
	require.Len(t, table.Footer, 3)
	assert.Equal(t, []string{"Over-applied", "", "", "", "", "-10.00"}, table.Footer[2])
}

func TestStatementTable_NoOverappliedRowWhenConsistent(t *testing.T) {
	original := decimal.RequireFromString("100")
	result, err := accounting.ComputeBalance(original, nil)
	require.NoError(t, err)

	table := export.StatementTable(&domain.Statement{Account: domain.ChargeAccount{OriginalAmount: original}, Result: result})

	assert.Len(t, table.Footer, 2)
}

func TestCollectionTable_SubtotalRows(t *testing.T) {
	report := &domain.CollectionReport{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Groups: []domain.CollectionGroup{{
			FeeHead:         "Bus Fee",
			Events:          []domain.PaymentEvent{{PaidAmount: decimal.RequireFromString("200"), ConcessionAmount: decimal.Zero}},
			EventCount:      1,
			TotalPaid:       decimal.RequireFromString("200"),
			TotalConcession: decimal.Zero,
		}},
		TotalPaid:       decimal.RequireFromString("200"),
		TotalConcession: decimal.Zero,
	}

	table := export.CollectionTable(report)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Bus Fee subtotal", table.Rows[1][0])
	assert.Equal(t, "1 payments", table.Rows[1][2])
	assert.Equal(t, []string{"Grand total", "", "", "", "200.00", "0.00"}, table.Footer[0])
}
