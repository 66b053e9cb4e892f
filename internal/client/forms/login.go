package forms

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/services"
	"github.com/winkhq/onboard/internal/common"
)

// LoginForm holds the credentials for the login screen. Unlike the wizard
// steps it is never persisted: credentials stay in memory only.
type LoginForm struct {
	mu         sync.Mutex
	email      string
	password   string
	submitting bool

	auth services.AuthService
}

func NewLoginForm(auth services.AuthService) *LoginForm {
	return &LoginForm{auth: auth}
}

func (f *LoginForm) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = v
}

func (f *LoginForm) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = v
}

func (f *LoginForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.TrimSpace(f.email) != "" && f.password != "" && !f.submitting
}

// Submit authenticates with the current credentials. The password is dropped
// from memory after a successful login.
func (f *LoginForm) Submit(ctx context.Context) (*models.AuthUser, error) {
	if !f.CanSubmit() {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	f.mu.Lock()
	f.submitting = true
	email, password := f.email, f.password
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	user, err := f.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.password = ""
	f.mu.Unlock()
	return user, nil
}
