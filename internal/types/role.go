package types

// UserRole is the portal role carried in the auth token.
// Staff and admins manage inquiries, clients, quotations and invoices;
// guests can only use the public marketing endpoints.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleGuest UserRole = "guest"
)

func (r UserRole) Validate() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleGuest:
		return true
	}
	return false
}

// CanManageDocuments reports whether the role may create or mutate
// clients, quotations, invoices and payments.
func (r UserRole) CanManageDocuments() bool {
	return r == RoleAdmin || r == RoleStaff
}
