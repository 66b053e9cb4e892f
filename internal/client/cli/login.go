package cli

import (
	"context"

	"github.com/winkhq/onboard/internal/client/forms"
	"github.com/winkhq/onboard/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	form := forms.NewLoginForm(a.auth)
	form.SetEmail(email)
	form.SetPassword(string(password))

	user, err := form.Submit(ctx)
	if err != nil {
		printlnFn("Login unsuccessful:", err.Error())
		return err
	}

	a.userEmail = user.Email
	printlnFn("Login successful")
	return nil
}
