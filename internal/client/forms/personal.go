package forms

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/winkhq/onboard/internal/client/draft"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/common"
)

// PersonalDetailsForm is the first wizard step: name, email and an optional
// profile photo.
type PersonalDetailsForm struct {
	mu         sync.Mutex
	data       models.PersonalDetails
	submitting bool

	store *draft.Store
	auto  *autosave
}

// NewPersonalDetailsForm restores the saved section, if any, before any edit
// can be made. Restore happens once per form instance.
func NewPersonalDetailsForm(ctx context.Context, store *draft.Store, delay time.Duration) *PersonalDetailsForm {
	f := &PersonalDetailsForm{store: store}
	store.RestorePersonalDetails(ctx, &f.data)
	f.auto = newAutosave(delay, f.saveNow)
	return f
}

func (f *PersonalDetailsForm) saveNow() {
	f.mu.Lock()
	snap := f.data
	f.mu.Unlock()
	f.store.SavePersonalDetails(context.Background(), snap)
}

func (f *PersonalDetailsForm) SetFirstname(v string) { f.edit(func() { f.data.Firstname = v }) }
func (f *PersonalDetailsForm) SetLastname(v string)  { f.edit(func() { f.data.Lastname = v }) }
func (f *PersonalDetailsForm) SetEmail(v string)     { f.edit(func() { f.data.Email = v }) }

// SetPhoto attaches a live file; nil removes the photo.
func (f *PersonalDetailsForm) SetPhoto(file *models.LiveFile) {
	f.edit(func() {
		if file == nil {
			f.data.Photo = models.NoAttachment()
			return
		}
		f.data.Photo = models.AttachmentFromFile(file)
	})
}

func (f *PersonalDetailsForm) edit(apply func()) {
	f.mu.Lock()
	apply()
	f.mu.Unlock()
	f.auto.Schedule()
}

// Values returns a snapshot of the current form state.
func (f *PersonalDetailsForm) Values() models.PersonalDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// CanSubmit reports whether all required fields are filled and no submit is
// in flight. The photo is optional.
func (f *PersonalDetailsForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.TrimSpace(f.data.Firstname) != "" &&
		strings.TrimSpace(f.data.Lastname) != "" &&
		strings.TrimSpace(f.data.Email) != "" &&
		!f.submitting
}

// Submit performs the final synchronous save for this step. Navigation to
// the next step is the caller's concern.
func (f *PersonalDetailsForm) Submit(ctx context.Context) error {
	if !f.CanSubmit() {
		return fmt.Errorf("%w: first name, last name and email are required", common.ErrorValidation)
	}

	f.mu.Lock()
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	f.auto.stop()
	f.store.SavePersonalDetails(ctx, f.Values())
	return nil
}
