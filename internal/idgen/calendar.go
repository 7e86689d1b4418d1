package idgen

import (
	"fmt"
	"time"

	ierr "github.com/veloralabs/agencydesk/internal/errors"
)

// FiscalYear maps a date to the agency's April–March fiscal-year label:
// the last two digits of two consecutive calendar years, e.g. 2024-04-01
// and 2025-02-15 both fall in "2425".
func FiscalYear(t time.Time) string {
	y := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%02d%02d", y%100, (y+1)%100)
	}
	return fmt.Sprintf("%02d%02d", (y-1)%100, y%100)
}

// FiscalYearShort returns the first two digits of the fiscal-year label,
// the form embedded in invoice identifiers.
func FiscalYearShort(t time.Time) string {
	return FiscalYear(t)[:2]
}

// HexMonth encodes a calendar month as a single uppercase hex character:
// 1–9 as digits, then A, B, C for October–December.
func HexMonth(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ierr.NewError("month out of range").
			WithHint("Month must be between 1 and 12").
			WithReportableDetails(map[string]any{"month": month}).
			Mark(ierr.ErrValidation)
	}
	return fmt.Sprintf("%X", month), nil
}
