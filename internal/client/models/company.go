package models

// Company is the backing entity created at the end of the wizard, as
// returned by POST /api/companies/create.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	LogoURL   string `json:"logoUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateCompanyRequest is the entity-creation payload.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// UploadLogoResponse is returned by the multipart logo upload endpoint.
type UploadLogoResponse struct {
	URL string `json:"url"`
}

// AuthUser identifies the authenticated user after login or registration.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token,omitempty"`
}
