package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/winkhq/onboard/internal/client/draft"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/repositories/companies"
	"github.com/winkhq/onboard/internal/common"
	"github.com/winkhq/onboard/internal/logging"
)

// RegistrationService assembles the final creation payload from the
// accumulated draft and runs it against the API: validate, upload the logo
// when present, then create the company. Clearing the draft afterwards is
// the caller's responsibility, so a failed attempt loses nothing.
type RegistrationService interface {
	Complete(ctx context.Context) (*models.Company, error)
}

type registrationService struct {
	store     *draft.Store
	companies companies.Repository
	logger    logging.Logger
}

func NewRegistrationService(store *draft.Store, repo companies.Repository, logger logging.Logger) RegistrationService {
	return &registrationService{store: store, companies: repo, logger: logger}
}

func (s *registrationService) Complete(ctx context.Context) (*models.Company, error) {
	workspace, ok := s.store.Workspace()
	if !ok {
		return nil, fmt.Errorf("%w: workspace details are missing", common.ErrorValidation)
	}

	logo, _ := s.store.WorkspaceLogoFile(ctx)

	data := companies.RegistrationData{
		Name:    workspace.Name,
		Address: workspace.Address,
		Logo:    logo,
	}
	if res := s.companies.Validate(data); !res.Valid() {
		return nil, fmt.Errorf("%w: %s", common.ErrorValidation, joinFieldErrors(res.Errors))
	}

	var logoURL string
	if logo != nil {
		uploaded, err := s.companies.UploadLogo(ctx, logo)
		if err != nil {
			return nil, fmt.Errorf("upload logo: %w", err)
		}
		logoURL = uploaded.URL
	}

	company, err := s.companies.Create(ctx, models.CreateCompanyRequest{
		Name:    strings.TrimSpace(workspace.Name),
		Address: strings.TrimSpace(workspace.Address),
		LogoURL: logoURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "company created", "id", company.ID, "name", company.Name)
	return company, nil
}

func joinFieldErrors(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, errs[f])
	}
	return strings.Join(parts, "; ")
}
