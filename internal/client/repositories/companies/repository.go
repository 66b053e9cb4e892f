// Package companies implements the client-side company repository: business
// validation of registration data and the create/upload API calls. All rule
// violations are caught here, before any network traffic.
package companies

import (
	"context"
	"fmt"
	"strings"

	"github.com/winkhq/onboard/internal/client/api"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/common"
)

const (
	createURL = "/api/companies/create"
	uploadURL = "/api/companies/upload-logo"

	// MaxLogoSize is the upload size limit enforced on both ends.
	MaxLogoSize = 5 * 1024 * 1024
)

// AllowedLogoTypes lists the accepted logo media types.
var AllowedLogoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// RegistrationData is the subset of draft data validated before submission.
type RegistrationData struct {
	Name    string
	Address string
	Logo    *models.LiveFile
}

// ValidationResult maps field names to user-facing messages.
type ValidationResult struct {
	Errors map[string]string
}

func (v ValidationResult) Valid() bool { return len(v.Errors) == 0 }

// Repository defines the company operations the registration flow needs.
type Repository interface {
	Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
	UploadLogo(ctx context.Context, f *models.LiveFile) (*models.UploadLogoResponse, error)
	Validate(data RegistrationData) ValidationResult
}

// APIRepository is the concrete Repository backed by the HTTP adapter.
type APIRepository struct {
	adapter api.Adapter
}

func NewAPIRepository(adapter api.Adapter) *APIRepository {
	return &APIRepository{adapter: adapter}
}

// Create validates the payload and posts it to the entity-creation endpoint.
func (r *APIRepository) Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: company name is required", common.ErrorValidation)
	}
	if len(req.Name) < 2 {
		return nil, fmt.Errorf("%w: company name must be at least 2 characters", common.ErrorValidation)
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", common.ErrorValidation)
	}
	if len(req.Address) < 5 {
		return nil, fmt.Errorf("%w: address must be at least 5 characters", common.ErrorValidation)
	}

	var company models.Company
	if err := r.adapter.Post(ctx, createURL, req, nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// UploadLogo validates the file and posts it as multipart field "logo".
func (r *APIRepository) UploadLogo(ctx context.Context, f *models.LiveFile) (*models.UploadLogoResponse, error) {
	if f == nil {
		return nil, common.ErrNoLiveFile
	}
	if f.Size() > MaxLogoSize {
		return nil, fmt.Errorf("%w: logo exceeds the 5MB size limit", common.ErrorValidation)
	}
	if _, ok := AllowedLogoTypes[f.MediaType]; !ok {
		return nil, fmt.Errorf("%w: unsupported logo format (allowed: JPEG, PNG, GIF, WebP)", common.ErrorValidation)
	}

	var resp models.UploadLogoResponse
	err := r.adapter.Upload(ctx, uploadURL, f, &api.UploadOptions{FieldName: "logo"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate checks registration data field by field so the UI can render
// per-field messages before submission.
func (r *APIRepository) Validate(data RegistrationData) ValidationResult {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(data.Name) == "":
		errs["name"] = "company name is required"
	case len(data.Name) < 2:
		errs["name"] = "company name must be at least 2 characters"
	case len(data.Name) > 100:
		errs["name"] = "company name must not exceed 100 characters"
	}

	switch {
	case strings.TrimSpace(data.Address) == "":
		errs["address"] = "address is required"
	case len(data.Address) < 5:
		errs["address"] = "address must be at least 5 characters"
	case len(data.Address) > 500:
		errs["address"] = "address must not exceed 500 characters"
	}

	if data.Logo != nil {
		if data.Logo.Size() > MaxLogoSize {
			errs["logo"] = "logo exceeds the 5MB size limit"
		} else if _, ok := AllowedLogoTypes[data.Logo.MediaType]; !ok {
			errs["logo"] = "unsupported logo format (allowed: JPEG, PNG, GIF, WebP)"
		}
	}

	return ValidationResult{Errors: errs}
}
