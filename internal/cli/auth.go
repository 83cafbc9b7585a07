package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ebalashova/healthapp-cli/internal/common"
	"github.com/ebalashova/healthapp-cli/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for account details and attempts to create
// a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := &models.RegisterRequest{
		Username: userName,
		Email:    email,
		Password: string(password),
	}

	if _, err := a.authService.Register(ctx, req); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the token claims identify the user; the app remembers the
// user id and name for subsequent commands and switches to ModeOnline.
// The password is securely wiped before returning.
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

	claims, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if claims.Expired() {
		log.Printf("Warning: received an already expired token")
	}

	a.userID = claims.UserID
	a.userName = claims.Username()
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Logout forgets the access token and the current user identity.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	a.userID = 0
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
