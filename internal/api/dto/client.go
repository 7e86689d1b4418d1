package dto

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/types"
)

type CreateClientRequest struct {
	Name         string             `json:"name" validate:"required,max=255"`
	Email        string             `json:"email" validate:"required,email"`
	Phone        string             `json:"phone" validate:"omitempty,max=20"`
	Company      string             `json:"company" validate:"omitempty,max=255"`
	ProjectCode  types.ProjectCode  `json:"project_code" validate:"required"`
	PlatformCode types.PlatformCode `json:"platform_code" validate:"required"`
	CountryCode  string             `json:"country_code" validate:"required,len=3,alpha"`
	Metadata     types.Metadata     `json:"metadata,omitempty"`
}

type UpdateClientRequest struct {
	Name     *string        `json:"name" validate:"omitempty,max=255"`
	Email    *string        `json:"email" validate:"omitempty,email"`
	Phone    *string        `json:"phone" validate:"omitempty,max=20"`
	Company  *string        `json:"company" validate:"omitempty,max=255"`
	Metadata types.Metadata `json:"metadata,omitempty"`
}

type ClientResponse struct {
	*client.Client
}

// ListClientsResponse represents the response for listing clients
type ListClientsResponse = types.ListResponse[*ClientResponse]

func (r *CreateClientRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if err := r.ProjectCode.Validate(); err != nil {
		return err
	}
	return r.PlatformCode.Validate()
}

// ToClient builds the client record without its generated identifier;
// the service assigns ClientID and SequenceNumber atomically with the
// sequence allocation.
func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Company:      r.Company,
		ProjectCode:  r.ProjectCode,
		PlatformCode: r.PlatformCode,
		CountryCode:  r.CountryCode,
		Metadata:     r.Metadata,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateClientRequest) Validate() error {
	return validator.New().Struct(r)
}
