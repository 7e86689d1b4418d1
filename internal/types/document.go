package types

import (
	ierr "github.com/veloralabs/agencydesk/internal/errors"
)

// ProjectCode classifies the engagement size encoded in a client identifier
type ProjectCode string

const (
	ProjectCodeEnterprise ProjectCode = "E"
	ProjectCodeStartup    ProjectCode = "S"
	ProjectCodeMedium     ProjectCode = "M"
	ProjectCodePersonal   ProjectCode = "P"
)

func (c ProjectCode) Validate() error {
	switch c {
	case ProjectCodeEnterprise, ProjectCodeStartup, ProjectCodeMedium, ProjectCodePersonal:
		return nil
	}
	return ierr.NewError("invalid project code").
		WithHint("Project code must be one of E, S, M, P").
		WithReportableDetails(map[string]any{"project_code": string(c)}).
		Mark(ierr.ErrValidation)
}

// PlatformCode classifies the delivery platform encoded in a client identifier
type PlatformCode string

const (
	PlatformCodeApp    PlatformCode = "A"
	PlatformCodeWeb    PlatformCode = "W"
	PlatformCodeBoth   PlatformCode = "B"
	PlatformCodeHybrid PlatformCode = "H"
)

func (c PlatformCode) Validate() error {
	switch c {
	case PlatformCodeApp, PlatformCodeWeb, PlatformCodeBoth, PlatformCodeHybrid:
		return nil
	}
	return ierr.NewError("invalid platform code").
		WithHint("Platform code must be one of A, W, B, H").
		WithReportableDetails(map[string]any{"platform_code": string(c)}).
		Mark(ierr.ErrValidation)
}

// SequenceType names one of the portal's counting series
type SequenceType string

const (
	SequenceTypeClient    SequenceType = "client"
	SequenceTypeQuotation SequenceType = "quotation"
	SequenceTypeInvoice   SequenceType = "invoice"
)

func (t SequenceType) Validate() error {
	switch t {
	case SequenceTypeClient, SequenceTypeQuotation, SequenceTypeInvoice:
		return nil
	}
	return ierr.NewError("invalid sequence type").
		WithHint("Sequence type must be one of client, quotation, invoice").
		WithReportableDetails(map[string]any{"sequence_type": string(t)}).
		Mark(ierr.ErrValidation)
}
