package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
)

// LineItem is a single billable line on a quotation or invoice
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// LineItems represents a JSONB array of line items
type LineItems []LineItem

// Scan implements the sql.Scanner interface for LineItems
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}

	result := LineItems{}
	err := json.Unmarshal(bytes, &result)
	*l = result
	return err
}

// Value implements the driver.Valuer interface for LineItems
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LineItems{})
	}
	return json.Marshal(l)
}

// Total sums the line amounts
func (l LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l {
		total = total.Add(item.Amount)
	}
	return total
}

// Validate checks each line for a description and non-negative amounts
func (l LineItems) Validate() error {
	if len(l) == 0 {
		return ierr.NewError("at least one line item is required").
			WithHint("Provide at least one line item").
			Mark(ierr.ErrValidation)
	}
	for i, item := range l {
		if item.Description == "" {
			return ierr.NewError("line item description is required").
				WithHint("Each line item needs a description").
				WithReportableDetails(map[string]any{"index": i}).
				Mark(ierr.ErrValidation)
		}
		if item.Amount.IsNegative() {
			return ierr.NewError("line item amount cannot be negative").
				WithHint("Line item amounts must be zero or positive").
				WithReportableDetails(map[string]any{"index": i}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
