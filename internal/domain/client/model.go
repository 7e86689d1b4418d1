package client

import (
	"github.com/veloralabs/agencydesk/internal/types"
)

// Client is an onboarded agency client
type Client struct {
	// ID is the internal primary key
	ID string `db:"id" json:"id"`

	// ClientID is the generated human-readable identifier,
	// e.g. EA701-IND-253. Immutable once assigned.
	ClientID string `db:"client_id" json:"client_id"`

	// SequenceNumber is the raw value consumed from the global client
	// sequence when the identifier was generated, kept for audit
	SequenceNumber int64 `db:"sequence_number" json:"sequence_number"`

	// ProjectCode classifies the engagement (E/S/M/P)
	ProjectCode types.ProjectCode `db:"project_code" json:"project_code"`

	// PlatformCode classifies the delivery platform (A/W/B/H)
	PlatformCode types.PlatformCode `db:"platform_code" json:"platform_code"`

	// CountryCode is stored upper-cased as supplied; no ISO validation
	CountryCode string `db:"country_code" json:"country_code"`

	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"phone" json:"phone"`
	Company string `db:"company" json:"company"`

	// InquiryID links back to the originating inquiry when converted
	InquiryID *string `db:"inquiry_id" json:"inquiry_id,omitempty"`

	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`

	types.BaseModel
}
