package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/winkhq/onboard/internal/client/forms"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/filex"
)

const backCommand = "back"

type wizardStep int

const (
	stepPersonalDetails wizardStep = iota
	stepWorkspace
	stepAboutYou
)

// Register walks the three-step registration wizard. Each step restores its
// previously saved values, so an interrupted registration picks up where it
// left off. Typing "back" on the first prompt of a step returns to the
// previous one without losing anything.
func (a *App) Register(ctx context.Context) error {
	printlnFn("Registration. Press Enter to keep a shown value, type 'back' to return to the previous step.")

	step := stepPersonalDetails
	for {
		switch step {
		case stepPersonalDetails:
			if err := a.runPersonalDetailsStep(ctx); err != nil {
				return err
			}
			step = stepWorkspace

		case stepWorkspace:
			back, err := a.runWorkspaceStep(ctx)
			if err != nil {
				return err
			}
			if back {
				step = stepPersonalDetails
			} else {
				step = stepAboutYou
			}

		case stepAboutYou:
			back, done, err := a.runAboutYouStep(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			if back {
				step = stepWorkspace
			}
			// on a failed submit the step runs again with its saved values
		}
	}
}

func (a *App) runPersonalDetailsStep(ctx context.Context) error {
	printlnFn("-- Step 1/3: personal details --")
	form := forms.NewPersonalDetailsForm(ctx, a.store, a.config.AutosaveDelay)

	for {
		v := form.Values()

		s, err := a.promptField("First name", v.Firstname)
		if err != nil {
			return err
		}
		form.SetFirstname(s)

		if s, err = a.promptField("Last name", v.Lastname); err != nil {
			return err
		}
		form.SetLastname(s)

		if s, err = a.promptField("Email", v.Email); err != nil {
			return err
		}
		form.SetEmail(s)

		photo, err := a.promptAttachment("Profile photo path (optional)", v.Photo)
		if err != nil {
			return err
		}
		if photo != nil {
			form.SetPhoto(photo)
		}

		if err := form.Submit(ctx); err != nil {
			printlnFn(err.Error())
			continue
		}
		return nil
	}
}

func (a *App) runWorkspaceStep(ctx context.Context) (back bool, err error) {
	printlnFn("-- Step 2/3: workspace --")
	form := forms.NewWorkspaceForm(ctx, a.store, a.config.AutosaveDelay)

	for {
		v := form.Values()

		s, err := a.promptField("Company name", v.Name)
		if err != nil {
			return false, err
		}
		if strings.EqualFold(s, backCommand) {
			form.GoBack(ctx)
			return true, nil
		}
		form.SetName(s)

		if s, err = a.promptField("Address", v.Address); err != nil {
			return false, err
		}
		form.SetAddress(s)

		if s, err = a.promptField("Sector", v.Sector); err != nil {
			return false, err
		}
		form.SetSector(s)

		if s, err = a.promptField("Website (optional)", v.Website); err != nil {
			return false, err
		}
		form.SetWebsite(s)

		if s, err = a.promptField("Description (optional)", v.Description); err != nil {
			return false, err
		}
		form.SetDescription(s)

		logo, err := a.promptAttachment("Logo path (optional)", v.Logo)
		if err != nil {
			return false, err
		}
		if logo != nil {
			form.SetLogo(logo)
		}

		if err := form.Submit(ctx); err != nil {
			printlnFn(err.Error())
			continue
		}
		return false, nil
	}
}

func (a *App) runAboutYouStep(ctx context.Context) (back bool, done bool, err error) {
	printlnFn("-- Step 3/3: about you --")
	form := forms.NewAboutYouForm(ctx, a.store, a.registration, a.config.AutosaveDelay)

	v := form.Values()

	s, err := a.promptField("Your sector (optional)", v.Sector)
	if err != nil {
		return false, false, err
	}
	if strings.EqualFold(s, backCommand) {
		form.GoBack(ctx)
		return true, false, nil
	}
	form.SetSector(s)

	size, err := GetChoice(a.reader, "Company size (optional)", forms.CompanySizes, a.out)
	if err != nil {
		return false, false, err
	}
	if size != "" {
		form.SetSize(size)
	}

	desc, err := GetMultiline(a.reader, "Tell us about yourself (optional)", a.out)
	if err != nil {
		return false, false, err
	}
	if desc != "" {
		form.SetDescription(desc)
	}

	// The draft is cleared on success, so grab the email first.
	email := ""
	if pd, ok := a.store.PersonalDetails(); ok {
		email = pd.Email
	}

	company, err := form.Submit(ctx)
	if err != nil {
		printlnFn("Could not create the company:", err.Error())
		return false, false, nil
	}

	a.userEmail = email
	printlnFn(fmt.Sprintf("Company %q created (id %s). Welcome!", company.Name, company.ID))
	return false, true, nil
}

// promptField shows the current value as the default; empty input keeps it.
func (a *App) promptField(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	s, err := GetSimpleText(a.reader, label, a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return current, nil
	}
	return s, nil
}

// promptAttachment asks for a file path and loads the file. Empty input
// keeps whatever attachment is already set; an unreadable path is reported
// and skipped rather than failing the step.
func (a *App) promptAttachment(label string, current models.Attachment) (*models.LiveFile, error) {
	if f, ok := current.File(); ok {
		label = fmt.Sprintf("%s [%s]", label, f.Name)
	}
	path, err := GetSimpleText(a.reader, label, a.out)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("cannot read file:", err.Error())
		return nil, nil
	}

	name := filepath.Base(path)
	return &models.LiveFile{Name: name, MediaType: filex.DetectMediaType(name, data), Data: data}, nil
}
