// Package models defines client-side data models for the onboarding wizard:
// the registration draft sections and the file attachment type that crosses
// the persistence boundary.
package models

// PersonalDetails is the first wizard step's section of the registration
// draft. The JSON keys match the blob format written by earlier versions of
// the application, so previously saved drafts stay restorable.
type PersonalDetails struct {
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Email     string     `json:"email"`
	Photo     Attachment `json:"profil_photo_preview"`
}

// Workspace is the second wizard step's section.
type Workspace struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Sector      string     `json:"sector"`
	Logo        Attachment `json:"logo_preview"`
}

// AboutYou is the final wizard step's section. All fields are optional.
type AboutYou struct {
	Description string `json:"description"`
	Sector      string `json:"sector"`
	Size        string `json:"size"`
}

// RegistrationDraft is the root persisted entity. Sections are populated
// incrementally as the user advances through the wizard; a nil section has
// never been saved.
type RegistrationDraft struct {
	PersonalDetails *PersonalDetails `json:"personalDetails,omitempty"`
	Workspace       *Workspace       `json:"workspace,omitempty"`
	AboutYou        *AboutYou        `json:"aboutYou,omitempty"`
}
