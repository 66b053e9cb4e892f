// Package draft implements the durable draft store for the registration
// wizard. One Store instance owns the canonical in-memory draft, loads it
// from the client-local database once at construction, and writes the whole
// serialized draft back on every section save. Persistence is best-effort:
// storage failures are logged and never surface to callers, so a storage
// hiccup cannot break the wizard.
package draft

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/winkhq/onboard/internal/client/datauri"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/client/repositories/drafts"
	"github.com/winkhq/onboard/internal/logging"
)

// Canonical filenames for restored attachments. The extension is derived
// from the detected media type at decode time.
const (
	profilePhotoFilename = "profil_photo"
	logoFilename         = "logo"
)

type Store struct {
	mu     sync.Mutex
	draft  models.RegistrationDraft
	repo   drafts.Repository
	logger logging.Logger
}

// NewStore loads the previously persisted draft, if any. Absence and load or
// parse failures all yield an empty draft; failures are logged, not fatal.
func NewStore(ctx context.Context, repo drafts.Repository, logger logging.Logger) *Store {
	s := &Store{repo: repo, logger: logger}

	b, err := repo.Get(ctx, drafts.RegistrationDraftKey)
	if err != nil {
		logger.Warn(ctx, "failed to load saved draft, starting empty", "error", err)
		return s
	}
	if len(b) == 0 {
		return s
	}

	var d models.RegistrationDraft
	if err := json.Unmarshal(b, &d); err != nil {
		logger.Warn(ctx, "saved draft is corrupted, starting empty", "error", err)
		return s
	}

	s.draft = d
	return s
}

// SavePersonalDetails replaces the personal-details section wholesale and
// runs a persist pass. Other sections are untouched.
func (s *Store) SavePersonalDetails(ctx context.Context, pd models.PersonalDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.PersonalDetails = &pd
	s.persistLocked(ctx)
}

// SaveWorkspace replaces the workspace section wholesale and runs a persist
// pass.
func (s *Store) SaveWorkspace(ctx context.Context, w models.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Workspace = &w
	s.persistLocked(ctx)
}

// SaveAboutYou replaces the about-you section wholesale and runs a persist
// pass.
func (s *Store) SaveAboutYou(ctx context.Context, ay models.AboutYou) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.AboutYou = &ay
	s.persistLocked(ctx)
}

// PersonalDetails returns the saved section, if any. Pure lookup.
func (s *Store) PersonalDetails() (models.PersonalDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.PersonalDetails == nil {
		return models.PersonalDetails{}, false
	}
	return *s.draft.PersonalDetails, true
}

// Workspace returns the saved section, if any. Pure lookup.
func (s *Store) Workspace() (models.Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Workspace == nil {
		return models.Workspace{}, false
	}
	return *s.draft.Workspace, true
}

// AboutYou returns the saved section, if any. Pure lookup.
func (s *Store) AboutYou() (models.AboutYou, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.AboutYou == nil {
		return models.AboutYou{}, false
	}
	return *s.draft.AboutYou, true
}

// RestorePersonalDetails copies the saved section onto form. The photo is
// only touched when form does not already hold a live file; a saved encoded
// reference is decoded back into a live file, and decode failures leave the
// field unset.
func (s *Store) RestorePersonalDetails(ctx context.Context, form *models.PersonalDetails) {
	saved, ok := s.PersonalDetails()
	if !ok {
		return
	}
	form.Firstname = saved.Firstname
	form.Lastname = saved.Lastname
	form.Email = saved.Email
	form.Photo = s.restoreAttachment(ctx, form.Photo, saved.Photo, profilePhotoFilename)
}

// RestoreWorkspace copies the saved section onto form; logo handling follows
// the same rules as RestorePersonalDetails.
func (s *Store) RestoreWorkspace(ctx context.Context, form *models.Workspace) {
	saved, ok := s.Workspace()
	if !ok {
		return
	}
	form.Name = saved.Name
	form.Address = saved.Address
	form.Description = saved.Description
	form.Website = saved.Website
	form.Sector = saved.Sector
	form.Logo = s.restoreAttachment(ctx, form.Logo, saved.Logo, logoFilename)
}

// RestoreAboutYou copies the saved section onto form.
func (s *Store) RestoreAboutYou(_ context.Context, form *models.AboutYou) {
	saved, ok := s.AboutYou()
	if !ok {
		return
	}
	*form = saved
}

// WorkspaceLogoFile materializes the saved workspace logo as a live file for
// upload: the live handle when one is held in memory, otherwise the decoded
// encoded reference. Returns (nil, false) when no logo was saved or the
// reference cannot be decoded.
func (s *Store) WorkspaceLogoFile(ctx context.Context) (*models.LiveFile, bool) {
	saved, ok := s.Workspace()
	if !ok {
		return nil, false
	}
	if f, ok := saved.Logo.File(); ok {
		return f, true
	}
	ref, ok := saved.Logo.Ref()
	if !ok {
		return nil, false
	}
	f, err := datauri.Decode(ref, logoFilename)
	if err != nil {
		s.logger.Warn(ctx, "failed to decode saved logo", "error", err)
		return nil, false
	}
	return f, true
}

// ClearRegistration resets the in-memory draft and deletes the durable
// record. Idempotent; deletion failures are logged only.
func (s *Store) ClearRegistration(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.RegistrationDraft{}
	if err := s.repo.Delete(ctx, drafts.RegistrationDraftKey); err != nil {
		s.logger.Warn(ctx, "failed to delete saved draft", "error", err)
	}
}

// persistLocked serializes the whole current draft and writes it under the
// fixed key. Live file attachments are converted to their encoded form in
// the persisted copy only; the in-memory draft keeps the live handles.
// Callers must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	out := s.draft

	if out.PersonalDetails != nil {
		pd := *out.PersonalDetails
		pd.Photo = s.encodedForm(ctx, pd.Photo)
		out.PersonalDetails = &pd
	}
	if out.Workspace != nil {
		w := *out.Workspace
		w.Logo = s.encodedForm(ctx, w.Logo)
		out.Workspace = &w
	}

	b, err := json.Marshal(out)
	if err != nil {
		s.logger.Warn(ctx, "failed to serialize draft", "error", err)
		return
	}
	if err := s.repo.Set(ctx, drafts.RegistrationDraftKey, b); err != nil {
		s.logger.Warn(ctx, "failed to persist draft", "error", err)
	}
}

// restoreAttachment resolves the attachment for a restored form field. A live
// file already held by the form wins; otherwise a saved encoded reference is
// decoded back into a live file named filename. Decode failures are logged
// and leave the field as it was.
func (s *Store) restoreAttachment(ctx context.Context, current, saved models.Attachment, filename string) models.Attachment {
	if _, ok := current.File(); ok {
		return current
	}
	if f, ok := saved.File(); ok {
		return models.AttachmentFromFile(f)
	}
	ref, ok := saved.Ref()
	if !ok {
		return current
	}
	f, err := datauri.Decode(ref, filename)
	if err != nil {
		s.logger.Warn(ctx, "failed to decode saved attachment", "file", filename, "error", err)
		return current
	}
	return models.AttachmentFromFile(f)
}

func (s *Store) encodedForm(ctx context.Context, att models.Attachment) models.Attachment {
	f, ok := att.File()
	if !ok {
		return att
	}
	ref, err := datauri.EncodeFile(f)
	if err != nil {
		s.logger.Warn(ctx, "failed to encode attachment", "file", f.Name, "error", err)
		return models.NoAttachment()
	}
	return models.AttachmentFromRef(ref)
}
