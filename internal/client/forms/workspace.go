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

// WorkspaceForm is the second wizard step: company name, address, sector and
// an optional logo.
type WorkspaceForm struct {
	mu         sync.Mutex
	data       models.Workspace
	submitting bool

	store *draft.Store
	auto  *autosave
}

// NewWorkspaceForm restores the saved section, if any, before any edit can be
// made. Restore happens once per form instance.
func NewWorkspaceForm(ctx context.Context, store *draft.Store, delay time.Duration) *WorkspaceForm {
	f := &WorkspaceForm{store: store}
	store.RestoreWorkspace(ctx, &f.data)
	f.auto = newAutosave(delay, f.saveNow)
	return f
}

func (f *WorkspaceForm) saveNow() {
	f.mu.Lock()
	snap := f.data
	f.mu.Unlock()
	f.store.SaveWorkspace(context.Background(), snap)
}

func (f *WorkspaceForm) SetName(v string)        { f.edit(func() { f.data.Name = v }) }
func (f *WorkspaceForm) SetAddress(v string)     { f.edit(func() { f.data.Address = v }) }
func (f *WorkspaceForm) SetDescription(v string) { f.edit(func() { f.data.Description = v }) }
func (f *WorkspaceForm) SetWebsite(v string)     { f.edit(func() { f.data.Website = v }) }
func (f *WorkspaceForm) SetSector(v string)      { f.edit(func() { f.data.Sector = v }) }

// SetLogo attaches a live file; nil removes the logo.
func (f *WorkspaceForm) SetLogo(file *models.LiveFile) {
	f.edit(func() {
		if file == nil {
			f.data.Logo = models.NoAttachment()
			return
		}
		f.data.Logo = models.AttachmentFromFile(file)
	})
}

func (f *WorkspaceForm) edit(apply func()) {
	f.mu.Lock()
	apply()
	f.mu.Unlock()
	f.auto.Schedule()
}

// Values returns a snapshot of the current form state.
func (f *WorkspaceForm) Values() models.Workspace {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// CanSubmit reports whether name, address and sector are filled and no
// submit is in flight. Description, website and logo are optional.
func (f *WorkspaceForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.TrimSpace(f.data.Name) != "" &&
		strings.TrimSpace(f.data.Address) != "" &&
		strings.TrimSpace(f.data.Sector) != "" &&
		!f.submitting
}

// Submit performs the final synchronous save for this step. Navigation to
// the next step is the caller's concern.
func (f *WorkspaceForm) Submit(ctx context.Context) error {
	if !f.CanSubmit() {
		return fmt.Errorf("%w: company name, address and sector are required", common.ErrorValidation)
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
	f.store.SaveWorkspace(ctx, f.Values())
	return nil
}

// GoBack saves the current state before the caller navigates to the previous
// step, so nothing typed here is lost.
func (f *WorkspaceForm) GoBack(ctx context.Context) {
	f.auto.stop()
	f.store.SaveWorkspace(ctx, f.Values())
}
