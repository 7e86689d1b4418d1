package inquiry

import (
	"github.com/veloralabs/agencydesk/internal/types"
)

// Inquiry is a marketing-site contact form submission awaiting triage
type Inquiry struct {
	// ID is the internal primary key
	ID string `db:"id" json:"id"`

	// Name is the prospect's name as submitted
	Name string `db:"name" json:"name"`

	// Email is the prospect's contact email
	Email string `db:"email" json:"email"`

	// Phone is optional
	Phone string `db:"phone" json:"phone"`

	// Company is optional
	Company string `db:"company" json:"company"`

	// ServiceInterest is the service the prospect asked about
	ServiceInterest string `db:"service_interest" json:"service_interest"`

	// Message is the free-form inquiry body
	Message string `db:"message" json:"message"`

	// InquiryStatus tracks triage progress
	InquiryStatus types.InquiryStatus `db:"inquiry_status" json:"inquiry_status"`

	// ConvertedClientID is set when staff convert this inquiry into a client
	ConvertedClientID *string `db:"converted_client_id" json:"converted_client_id,omitempty"`

	types.BaseModel
}
