package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and attempts to create a new
// inactive account. The business outcome (success or rejection) is printed
// as-is; infrastructure errors are logged and returned. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.service.Register(ctx, email, string(password))
	if err != nil {
		a.logger.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn(res.Message)
	return nil
}

// Activate prompts for an email and flips the account to the active state.
func (a *App) Activate(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.service.Activate(ctx, email)
	if err != nil {
		a.logger.Error(ctx, "activation failed", "error", err)
		return err
	}

	printlnFn(res.Message)
	return nil
}

// Login prompts for credentials and reports whether they belong to an
// active account. The outcome message does not reveal which factor failed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.service.Authenticate(ctx, email, string(password))
	if err != nil {
		a.logger.Error(ctx, "login failed", "error", err)
		return err
	}

	printlnFn(res.Message)
	return nil
}

// Reset prompts for an email and a new password and replaces the stored
// credential. Activation state is left untouched.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.service.ResetPassword(ctx, email, string(password))
	if err != nil {
		a.logger.Error(ctx, "password reset failed", "error", err)
		return err
	}

	printlnFn(res.Message)
	return nil
}
