package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/wpsaas/wpcloud/internal/client/api"
	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email, display name and password and
// attempts to create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.apiClient.Register(ctx, email, name, password); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the backend. On success the signed-in identity is stored in the session
// manager, which re-scopes the site record to the new user's slot and
// rehydrates any record saved there earlier.
//
// The password is securely wiped before returning.
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

	user, err := a.apiClient.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
			return nil
		}
		log.Printf("Login unsuccessfull: %s", err.Error())
		return nil
	}

	a.sessions.SetAuth(ctx, session.AuthState{
		User: &session.UserIdentity{Email: user.Email, Name: user.Name},
	})
	a.setMode(ModeOnline)
	log.Printf("Login successfull")
	return nil
}

// Logout drops the backend tokens and clears the signed-in identity. The
// site record stays under the last user's slot so a later login finds it.
func (a *App) Logout(ctx context.Context) error {
	a.apiClient.Logout()
	a.sessions.SetAuth(ctx, session.AuthState{})
	return nil
}
