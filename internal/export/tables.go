package export

import (
	"strconv"
	"time"

	"github.com/SscSPs/school_fee_app/internal/core/domain"
	"github.com/SscSPs/school_fee_app/internal/utils"
)

// StatementTable lays out a charge account ledger.
func StatementTable(s *domain.Statement) Table {
	t := Table{
		Title:  "statement " + s.Account.PayerID + " " + s.Account.FeeHead,
		Header: []string{"Paid At", "Reference No", "Mode", "Paid", "Concession", "Balance"},
		Rows:   make([][]string, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		t.Rows = append(t.Rows, []string{
			l.PaidAt.UTC().Format(time.DateOnly),
			l.ReferenceNo,
			string(l.PaymentMode),
			utils.FormatMoney(l.PaidAmount),
			utils.FormatMoney(l.ConcessionAmount),
			utils.FormatMoney(l.RunningBalance),
		})
	}
	t.Footer = [][]string{
		{"Original", "", "", "", "", utils.FormatMoney(s.Result.OriginalAmount)},
		{"Total", "", "", utils.FormatMoney(s.Result.TotalPaid), utils.FormatMoney(s.Result.TotalConcession), utils.FormatMoney(s.Result.RemainingBalance)},
	}
	// Running balances are not clamped, so the excess is shown as it appears on the last line.
	if s.Result.Overapplied.IsPositive() {
		t.Footer = append(t.Footer, []string{"Over-applied", "", "", "", "", utils.FormatMoney(s.Result.Overapplied.Neg())})
	}
	return t
}

// CollectionTable lays out a collection report, one row per event with a subtotal per fee head.
func CollectionTable(r *domain.CollectionReport) Table {
	t := Table{
		Title:  "collections " + r.From.Format(time.DateOnly) + " to " + r.To.Format(time.DateOnly),
		Header: []string{"Fee Head", "Paid At", "Reference No", "Charge Account", "Paid", "Concession"},
	}
	for _, g := range r.Groups {
		for _, e := range g.Events {
			t.Rows = append(t.Rows, []string{
				g.FeeHead,
				e.PaidAt.UTC().Format(time.DateOnly),
				e.ReferenceNo,
				e.ChargeAccountID,
				utils.FormatMoney(e.PaidAmount),
				utils.FormatMoney(e.ConcessionAmount),
			})
		}
		t.Rows = append(t.Rows, []string{
			g.FeeHead + " subtotal", "", strconv.Itoa(g.EventCount) + " payments", "",
			utils.FormatMoney(g.TotalPaid),
			utils.FormatMoney(g.TotalConcession),
		})
	}
	t.Footer = [][]string{
		{"Grand total", "", "", "", utils.FormatMoney(r.TotalPaid), utils.FormatMoney(r.TotalConcession)},
	}
	return t
}

// BalanceTable lays out outstanding balances grouped by fee head.
func BalanceTable(r *domain.BalanceReport) Table {
	title := "balances"
	if r.PayerType != "" {
		title += " " + string(r.PayerType)
	}
	t := Table{
		Title:  title,
		Header: []string{"Fee Head", "Payer", "Academic Year", "Original", "Paid", "Concession", "Outstanding", "Status"},
	}
	for _, g := range r.Groups {
		for _, a := range g.Accounts {
			t.Rows = append(t.Rows, []string{
				g.FeeHead,
				a.Account.PayerID,
				a.Account.AcademicYear,
				utils.FormatMoney(a.Account.OriginalAmount),
				utils.FormatMoney(a.Result.TotalPaid),
				utils.FormatMoney(a.Result.TotalConcession),
				utils.FormatMoney(a.Result.RemainingBalance),
				string(a.Result.Status),
			})
		}
		t.Rows = append(t.Rows, []string{
			g.FeeHead + " subtotal", "", "",
			utils.FormatMoney(g.TotalOriginal), "", "",
			utils.FormatMoney(g.TotalOutstanding), "",
		})
	}
	t.Footer = [][]string{
		{"Grand total", "", "", utils.FormatMoney(r.TotalOriginal), "", "", utils.FormatMoney(r.TotalOutstanding), ""},
	}
	return t
}
