package domain

import "errors"

const (
	ExportScopeDaily = "daily"
	ExportScopeAll   = "all"
)

var (
	MessageSuccessExport      = "export generated successfully"
	MessageSuccessEmailExport = "export emailed successfully"

	MessageFailedExport      = "failed to generate export"
	MessageFailedEmailExport = "failed to email export"

	ErrInvalidExportScope = errors.New("export scope must be daily or all")
)

type (
	EmailExportRequest struct {
		Scope string `json:"scope" validate:"required,oneof=daily all"`
		Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	}
)
