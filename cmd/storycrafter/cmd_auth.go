package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"storycrafter/internal/models"
	"storycrafter/internal/state"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in (or sign up) and store the session token in the keyring",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password (prompted when empty)")
	loginCmd.Flags().Bool("signup", false, "Create the account first")
	loginCmd.Flags().String("name", "", "Display name for a new account")
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func fieldError(errs models.FieldErrors) error {
	var parts []string
	if errs.Email != "" {
		parts = append(parts, errs.Email)
	}
	if errs.Password != "" {
		parts = append(parts, errs.Password)
	}
	return errors.New(strings.Join(parts, " "))
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	signup, _ := cmd.Flags().GetBool("signup")
	name, _ := cmd.Flags().GetString("name")

	var err error
	if email == "" {
		if email, err = prompt("Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = prompt("Password: "); err != nil {
			return err
		}
	}

	client, cleanup, err := openClient(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()
	client.Startup(cmd.Context(), false)
	ctl := client.Controller

	var st state.AppState
	if signup {
		if _, err := ctl.Navigate(models.PageSignup); err != nil {
			return err
		}
		if st, err = ctl.Signup(email, password); err != nil {
			return err
		}
		if !st.SignupErrors.Empty() {
			return fieldError(st.SignupErrors)
		}
		if name == "" {
			if name, err = prompt("What should we call you? "); err != nil {
				return err
			}
		}
		if st, err = ctl.SubmitName(name); err != nil {
			return err
		}
	} else {
		if _, err := ctl.Navigate(models.PageLogin); err != nil {
			return err
		}
		if st, err = ctl.Login(email, password); err != nil {
			return err
		}
		if !st.LoginErrors.Empty() {
			return fieldError(st.LoginErrors)
		}
	}

	fmt.Printf("Logged in as %s <%s>\n", st.Session.User.Name, st.Session.User.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, cleanup, err := openClient(cmd, false)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.Tokens.ClearToken(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, st, cleanup, err := restoredSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	u := st.Session.User
	fmt.Printf("%s <%s> (id %d)\n", u.Name, u.Email, u.ID)
	return nil
}
