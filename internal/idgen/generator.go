package idgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veloralabs/agencydesk/internal/domain/sequence"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/types"
)

// ClientIdentifier is a generated client number together with the raw
// sequence value it consumed, kept for audit logging.
type ClientIdentifier struct {
	ID       string
	Sequence int64
}

// QuotationIdentifier is a generated quotation number.
type QuotationIdentifier struct {
	ID       string
	Sequence int64
}

// InvoiceIdentifier is a generated invoice number together with the fiscal
// year its sequence was scoped to.
type InvoiceIdentifier struct {
	ID         string
	Sequence   int64
	FiscalYear string
}

// Generator produces the portal's human-readable document identifiers.
// All sequence allocation goes through the store's single atomic
// operation; the generator itself holds no counter state.
type Generator struct {
	seq    sequence.Store
	logger *logger.Logger
}

func NewGenerator(seq sequence.Store, logger *logger.Logger) *Generator {
	return &Generator{
		seq:    seq,
		logger: logger,
	}
}

// NextClientID allocates the next global client sequence value and formats
// it as <project><platform>7<NN>-<CCC>-<YY><M>. The country code is
// upper-cased and used as supplied. A failed allocation returns no
// identifier; the caller must abort its create flow.
func (g *Generator) NextClientID(ctx context.Context, projectCode types.ProjectCode, platformCode types.PlatformCode, countryCode string, at time.Time) (*ClientIdentifier, error) {
	if err := projectCode.Validate(); err != nil {
		return nil, err
	}
	if err := platformCode.Validate(); err != nil {
		return nil, err
	}
	if countryCode == "" {
		return nil, ierr.NewError("country code is required").
			WithHint("Country code must be provided").
			Mark(ierr.ErrValidation)
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	hexMonth, err := HexMonth(int(at.Month()))
	if err != nil {
		return nil, err
	}

	seq, err := g.seq.Next(ctx, sequence.ClientKey())
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%s%s7%02d-%s-%02d%s",
		projectCode,
		platformCode,
		seq,
		strings.ToUpper(countryCode),
		at.Year()%100,
		hexMonth,
	)

	g.logger.Infow("generated client identifier",
		"client_id", id,
		"sequence", seq,
	)

	return &ClientIdentifier{ID: id, Sequence: seq}, nil
}

// NextQuotationID allocates the next quotation sequence value for the given
// client and formats it as QN<version>-<base>-<NNN>. The sequence is scoped
// per base client id; the decorated identifier is accepted and reduced.
func (g *Generator) NextQuotationID(ctx context.Context, clientID string, version int) (*QuotationIdentifier, error) {
	if clientID == "" {
		return nil, ierr.NewError("client id is required").
			WithHint("Client identifier must be provided").
			Mark(ierr.ErrValidation)
	}
	if version < 1 {
		version = 1
	}

	base := BaseClientID(clientID)

	seq, err := g.seq.Next(ctx, sequence.QuotationKey(base))
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("QN%d-%s-%03d", version, base, seq)

	g.logger.Infow("generated quotation identifier",
		"quotation_id", id,
		"base_client_id", base,
		"sequence", seq,
	)

	return &QuotationIdentifier{ID: id, Sequence: seq}, nil
}

// NextInvoiceID allocates the next invoice sequence value for the given
// client in the fiscal year of the reference date and formats it as
// IN<version>-FY<fy2>-<base>-<NNN>.
func (g *Generator) NextInvoiceID(ctx context.Context, clientID string, version int, at time.Time) (*InvoiceIdentifier, error) {
	if clientID == "" {
		return nil, ierr.NewError("client id is required").
			WithHint("Client identifier must be provided").
			Mark(ierr.ErrValidation)
	}
	if version < 1 {
		version = 1
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}

	base := BaseClientID(clientID)
	fiscalYear := FiscalYear(at)

	seq, err := g.seq.Next(ctx, sequence.InvoiceKey(base, fiscalYear))
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("IN%d-FY%s-%s-%03d", version, fiscalYear[:2], base, seq)

	g.logger.Infow("generated invoice identifier",
		"invoice_id", id,
		"base_client_id", base,
		"fiscal_year", fiscalYear,
		"sequence", seq,
	)

	return &InvoiceIdentifier{ID: id, Sequence: seq, FiscalYear: fiscalYear}, nil
}
