package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/email"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InquiryService handles marketing-site inquiries and their conversion
// into clients
type InquiryService interface {
	CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
	GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error)
	UpdateInquiry(ctx context.Context, id string, req dto.UpdateInquiryRequest) (*dto.InquiryResponse, error)
	ListInquiries(ctx context.Context, status types.InquiryStatus) (*dto.ListInquiriesResponse, error)
	ConvertInquiry(ctx context.Context, id string, req dto.ConvertInquiryRequest) (*dto.ClientResponse, error)
}

type inquiryService struct {
	ServiceParams
}

func NewInquiryService(params ServiceParams) InquiryService {
	return &inquiryService{
		ServiceParams: params,
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the inquiry details").
			Mark(ierr.ErrValidation)
	}

	inq := req.ToInquiry(ctx)

	if err := s.InquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}

	// Acknowledgement email is best effort; the inquiry is already saved
	subject, text := email.InquiryReceived(inq.Name, inq.ServiceInterest)
	if _, err := s.Email.SendEmail(ctx, email.SendEmailRequest{
		ToAddress: inq.Email,
		Subject:   subject,
		Text:      text,
	}); err != nil {
		s.Logger.Errorw("failed to send inquiry acknowledgement",
			"error", err,
			"inquiry_id", inq.ID)
	}

	return &dto.InquiryResponse{Inquiry: inq}, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error) {
	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InquiryResponse{Inquiry: inq}, nil
}

func (s *inquiryService) UpdateInquiry(ctx context.Context, id string, req dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the inquiry status").
			Mark(ierr.ErrValidation)
	}

	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Converted inquiries are terminal; the conversion endpoint owns
	// that transition
	if inq.InquiryStatus == types.InquiryStatusConverted {
		return nil, ierr.NewError("inquiry is already converted").
			WithHint("Converted inquiries cannot be updated").
			Mark(ierr.ErrInvalidOperation)
	}
	if req.InquiryStatus == types.InquiryStatusConverted {
		return nil, ierr.NewError("cannot mark an inquiry converted directly").
			WithHint("Use the convert endpoint to onboard the prospect as a client").
			Mark(ierr.ErrInvalidOperation)
	}

	inq.InquiryStatus = req.InquiryStatus
	inq.UpdatedAt = time.Now().UTC()
	inq.UpdatedBy = types.GetUserID(ctx)

	if err := s.InquiryRepo.Update(ctx, inq); err != nil {
		return nil, err
	}

	return &dto.InquiryResponse{Inquiry: inq}, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, status types.InquiryStatus) (*dto.ListInquiriesResponse, error) {
	inquiries, err := s.InquiryRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	items := lo.Map(inquiries, func(inq *inquiry.Inquiry, _ int) *dto.InquiryResponse {
		return &dto.InquiryResponse{Inquiry: inq}
	})

	response := types.NewListResponse(items)
	return &response, nil
}

// ConvertInquiry onboards the prospect as a client. The client identifier
// allocation and the inquiry status transition commit together.
func (s *inquiryService) ConvertInquiry(ctx context.Context, id string, req dto.ConvertInquiryRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the conversion details").
			Mark(ierr.ErrValidation)
	}

	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inq.InquiryStatus == types.InquiryStatusConverted {
		return nil, ierr.NewError("inquiry is already converted").
			WithHint("This inquiry already has a client").
			WithReportableDetails(map[string]any{"inquiry_id": id}).
			Mark(ierr.ErrInvalidOperation)
	}
	if inq.InquiryStatus == types.InquiryStatusClosed {
		return nil, ierr.NewError("inquiry is closed").
			WithHint("Closed inquiries cannot be converted").
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	cl := &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         inq.Name,
		Email:        inq.Email,
		Phone:        inq.Phone,
		Company:      inq.Company,
		ProjectCode:  req.ProjectCode,
		PlatformCode: req.PlatformCode,
		CountryCode:  req.CountryCode,
		InquiryID:    lo.ToPtr(inq.ID),
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		identifier, err := s.IDGen.NextClientID(txCtx, req.ProjectCode, req.PlatformCode, req.CountryCode, now)
		if err != nil {
			return err
		}
		cl.ClientID = identifier.ID
		cl.SequenceNumber = identifier.Sequence

		if err := s.ClientRepo.Create(txCtx, cl); err != nil {
			return err
		}

		inq.InquiryStatus = types.InquiryStatusConverted
		inq.ConvertedClientID = lo.ToPtr(cl.ID)
		inq.UpdatedAt = now
		inq.UpdatedBy = types.GetUserID(txCtx)
		return s.InquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("converted inquiry to client",
		"inquiry_id", inq.ID,
		"client_id", cl.ClientID)

	return &dto.ClientResponse{Client: cl}, nil
}
