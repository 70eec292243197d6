package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the API. Invalid
// credentials leave any existing session untouched; a success persists the
// new session and greets the operator.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid username or password")
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Welcome back, " + user.Name + "!")
	return nil
}

// Register collects the new operator's fields and submits the multipart
// registration call.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	roleID, err := GetInt(a.reader, "Enter role id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Avatar file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Username:  userName,
		Password:  string(password),
		Email:     email,
		Name:      name,
		RoleID:    roleID,
		ImagePath: imagePath,
	}

	if err := a.api.Register(ctx, reg); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// Logout clears the session and cart, both in memory and in the durable
// store. It never leaves a half-cleared state: all three slots go in one
// statement.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.cart.Reset()

	printlnFn("Logged out successfully")
	return nil
}
