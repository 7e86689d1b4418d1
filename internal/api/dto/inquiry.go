package dto

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/types"
)

type CreateInquiryRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,max=20"`
	Company         string `json:"company" validate:"omitempty,max=255"`
	ServiceInterest string `json:"service_interest" validate:"omitempty,max=255"`
	Message         string `json:"message" validate:"required,max=5000"`
}

type UpdateInquiryRequest struct {
	InquiryStatus types.InquiryStatus `json:"inquiry_status" validate:"required,oneof=new contacted converted closed"`
}

// ConvertInquiryRequest carries the classification needed to onboard the
// prospect as a client
type ConvertInquiryRequest struct {
	ProjectCode  types.ProjectCode  `json:"project_code" validate:"required"`
	PlatformCode types.PlatformCode `json:"platform_code" validate:"required"`
	CountryCode  string             `json:"country_code" validate:"required,len=3,alpha"`
}

type InquiryResponse struct {
	*inquiry.Inquiry
}

// ListInquiriesResponse represents the response for listing inquiries
type ListInquiriesResponse = types.ListResponse[*InquiryResponse]

func (r *CreateInquiryRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *CreateInquiryRequest) ToInquiry(ctx context.Context) *inquiry.Inquiry {
	return &inquiry.Inquiry{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INQUIRY),
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Company:         r.Company,
		ServiceInterest: r.ServiceInterest,
		Message:         r.Message,
		InquiryStatus:   types.InquiryStatusNew,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateInquiryRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *ConvertInquiryRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if err := r.ProjectCode.Validate(); err != nil {
		return err
	}
	return r.PlatformCode.Validate()
}
