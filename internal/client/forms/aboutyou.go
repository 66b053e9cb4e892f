package forms

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/winkhq/onboard/internal/client/draft"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/services"
	"github.com/winkhq/onboard/internal/common"
)

// CompanySizes are the selectable answers for the company-size question.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// AboutYouForm is the final wizard step. All of its fields are optional;
// submitting it completes the registration and clears the draft on success.
type AboutYouForm struct {
	mu         sync.Mutex
	data       models.AboutYou
	submitting bool

	store        *draft.Store
	registration services.RegistrationService
	auto         *autosave
}

// NewAboutYouForm restores the saved section, if any, before any edit can be
// made. Restore happens once per form instance.
func NewAboutYouForm(ctx context.Context, store *draft.Store, registration services.RegistrationService, delay time.Duration) *AboutYouForm {
	f := &AboutYouForm{store: store, registration: registration}
	store.RestoreAboutYou(ctx, &f.data)
	f.auto = newAutosave(delay, f.saveNow)
	return f
}

func (f *AboutYouForm) saveNow() {
	f.mu.Lock()
	snap := f.data
	f.mu.Unlock()
	f.store.SaveAboutYou(context.Background(), snap)
}

func (f *AboutYouForm) SetDescription(v string) { f.edit(func() { f.data.Description = v }) }
func (f *AboutYouForm) SetSector(v string)      { f.edit(func() { f.data.Sector = v }) }
func (f *AboutYouForm) SetSize(v string)        { f.edit(func() { f.data.Size = v }) }

func (f *AboutYouForm) edit(apply func()) {
	f.mu.Lock()
	apply()
	f.mu.Unlock()
	f.auto.Schedule()
}

// Values returns a snapshot of the current form state.
func (f *AboutYouForm) Values() models.AboutYou {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// CanSubmit is true unless a submit is already in flight; every field of
// this step is optional.
func (f *AboutYouForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting
}

// Submit saves this step one last time, then completes the registration from
// the accumulated draft. The draft is cleared only after the company is
// created; on failure the form and the draft stay intact so the user can
// correct and retry.
func (f *AboutYouForm) Submit(ctx context.Context) (*models.Company, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: submission already in progress", common.ErrorValidation)
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	f.auto.stop()
	f.store.SaveAboutYou(ctx, f.Values())

	company, err := f.registration.Complete(ctx)
	if err != nil {
		return nil, err
	}

	f.store.ClearRegistration(ctx)
	return company, nil
}

// GoBack saves the current state before the caller navigates to the previous
// step, so nothing typed here is lost.
func (f *AboutYouForm) GoBack(ctx context.Context) {
	f.auto.stop()
	f.store.SaveAboutYou(ctx, f.Values())
}
