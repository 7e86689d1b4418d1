package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/email"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// QuotationService handles quotation issuance and lifecycle
type QuotationService interface {
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error)
	GetQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error)
	UpdateQuotation(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error)
	ListQuotations(ctx context.Context, clientID string) (*dto.ListQuotationsResponse, error)
	SendQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error)
}

type quotationService struct {
	ServiceParams
}

func NewQuotationService(params ServiceParams) QuotationService {
	return &quotationService{
		ServiceParams: params,
	}
}

// CreateQuotation issues a new quotation. The identifier is scoped per
// client, so the client must exist; allocation and insert commit
// together.
func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the quotation details").
			Mark(ierr.ErrValidation)
	}

	cl, err := s.ClientRepo.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	quot := req.ToQuotation(ctx)

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		identifier, err := s.IDGen.NextQuotationID(txCtx, cl.ClientID, quot.Version)
		if err != nil {
			return err
		}
		quot.QuotationID = identifier.ID
		quot.SequenceNumber = identifier.Sequence

		return s.QuotationRepo.Create(txCtx, quot)
	})
	if err != nil {
		return nil, err
	}

	return &dto.QuotationResponse{Quotation: quot}, nil
}

func (s *quotationService) GetQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	quot, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.QuotationResponse{Quotation: quot}, nil
}

func (s *quotationService) UpdateQuotation(ctx context.Context, id string, req dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the quotation details").
			Mark(ierr.ErrValidation)
	}

	quot, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only drafts may change content; status transitions are allowed
	// until the quotation is accepted or declined
	if len(req.LineItems) > 0 || req.Title != nil {
		if quot.QuotationStatus != types.QuotationStatusDraft {
			return nil, ierr.NewError("only draft quotations can be edited").
				WithHint("Issue a new version instead of editing a sent quotation").
				Mark(ierr.ErrInvalidOperation)
		}
	}

	if req.Title != nil {
		quot.Title = *req.Title
	}
	if len(req.LineItems) > 0 {
		quot.LineItems = dto.ToLineItems(req.LineItems)
		quot.Total = quot.LineItems.Total()
	}
	if req.ValidUntil != nil {
		quot.ValidUntil = req.ValidUntil
	}
	if req.QuotationStatus != "" {
		if err := validateQuotationTransition(quot.QuotationStatus, req.QuotationStatus); err != nil {
			return nil, err
		}
		quot.QuotationStatus = req.QuotationStatus
	}
	quot.UpdatedAt = time.Now().UTC()
	quot.UpdatedBy = types.GetUserID(ctx)

	if err := s.QuotationRepo.Update(ctx, quot); err != nil {
		return nil, err
	}

	return &dto.QuotationResponse{Quotation: quot}, nil
}

func (s *quotationService) ListQuotations(ctx context.Context, clientID string) (*dto.ListQuotationsResponse, error) {
	quotations, err := s.QuotationRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := lo.Map(quotations, func(quot *quotation.Quotation, _ int) *dto.QuotationResponse {
		return &dto.QuotationResponse{Quotation: quot}
	})

	response := types.NewListResponse(items)
	return &response, nil
}

// SendQuotation emails the quotation to the client and marks it sent
func (s *quotationService) SendQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	quot, err := s.QuotationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if quot.QuotationStatus != types.QuotationStatusDraft {
		return nil, ierr.NewError("quotation is not a draft").
			WithHint("Only draft quotations can be sent").
			WithReportableDetails(map[string]any{"quotation_status": quot.QuotationStatus}).
			Mark(ierr.ErrInvalidOperation)
	}

	cl, err := s.ClientRepo.Get(ctx, quot.ClientID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quot.QuotationStatus = types.QuotationStatusSent
	quot.SentAt = &now
	quot.UpdatedAt = now
	quot.UpdatedBy = types.GetUserID(ctx)

	if err := s.QuotationRepo.Update(ctx, quot); err != nil {
		return nil, err
	}

	subject, text := email.QuotationSent(cl.Name, quot.QuotationID, quot.Total, quot.Currency)
	if _, err := s.Email.SendEmail(ctx, email.SendEmailRequest{
		ToAddress: cl.Email,
		Subject:   subject,
		Text:      text,
	}); err != nil {
		s.Logger.Errorw("failed to send quotation email",
			"error", err,
			"quotation_id", quot.QuotationID)
	}

	return &dto.QuotationResponse{Quotation: quot}, nil
}

func validateQuotationTransition(from, to types.QuotationStatus) error {
	allowed := map[types.QuotationStatus][]types.QuotationStatus{
		types.QuotationStatusDraft: {types.QuotationStatusSent},
		types.QuotationStatusSent:  {types.QuotationStatusAccepted, types.QuotationStatusDeclined},
	}
	if lo.Contains(allowed[from], to) {
		return nil
	}
	return ierr.NewError("invalid quotation status transition").
		WithHint("This status change is not allowed").
		WithReportableDetails(map[string]any{"from": from, "to": to}).
		Mark(ierr.ErrInvalidOperation)
}
