package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ebalashova/healthapp-cli/internal/models"
	"github.com/ebalashova/healthapp-cli/internal/timex"
)

func printProfile(p *models.UserProfile) {
	fmt.Printf("User #%d %s <%s> (%s)\n", p.ID, p.DisplayName(), p.Email, p.Role.Name)
	if p.ChildName != nil {
		fmt.Printf("Child: %s", *p.ChildName)
		if p.ChildDOB != nil {
			fmt.Printf(", born %s", p.ChildDOB)
		}
		if p.ChildSexAssignedAtBirth != nil {
			fmt.Printf(" (%s)", *p.ChildSexAssignedAtBirth)
		}
		fmt.Println()
	}
	if p.AvatarURL != nil {
		fmt.Printf("Avatar: %s\n", *p.AvatarURL)
	}
}

// Whoami fetches and displays the profile of the authenticated user.
func (a *App) Whoami(ctx context.Context) error {
	profile, err := a.profileService.GetCurrentUser(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	printProfile(profile)
	return nil
}

// EditProfile interactively collects profile changes and submits them as a
// partial update. Every prompt may be left blank to keep the current value;
// if all prompts are left blank, nothing is sent to the server.
func (a *App) EditProfile(ctx context.Context) error {
	fmt.Println("Leave a field blank to keep its current value.")

	upd := &models.ProfileUpdate{}

	prompts := []struct {
		label string
		dest  **string
	}{
		{"First name", &upd.FirstName},
		{"Last name", &upd.LastName},
		{"Child name", &upd.ChildName},
		{"Child sex assigned at birth", &upd.ChildSexAssignedAtBirth},
		{"Avatar URL", &upd.AvatarURL},
	}

	for _, p := range prompts {
		value, err := GetOptionalText(a.reader, p.label, os.Stdout)
		if err != nil {
			return err
		}
		if value != "" {
			v := value
			*p.dest = &v
		}
	}

	dob, err := GetOptionalText(a.reader, fmt.Sprintf("Child date of birth (%s)", timex.DateLayout), os.Stdout)
	if err != nil {
		return err
	}
	if dob != "" {
		d, err := timex.ParseDate(dob)
		if err != nil {
			log.Printf("Invalid date %q, expected %s", dob, timex.DateLayout)
			return err
		}
		upd.ChildDOB = &d
	}

	if upd.IsEmpty() {
		fmt.Println("Nothing to update.")
		return nil
	}

	profile, err := a.profileService.UpdateProfile(ctx, a.userID, upd)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Profile updated.")
	printProfile(profile)
	return nil
}
