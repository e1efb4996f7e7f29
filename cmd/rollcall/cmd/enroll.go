package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/good-yellow-bee/rollcall/internal/models"
	"github.com/good-yellow-bee/rollcall/internal/upstream"
)

var enrollUsername string

// signupCmd enrolls a student in an activity
var signupCmd = &cobra.Command{
	Use:   "signup <activity> <email>",
	Short: "Sign a student up for an activity",
	Long: `Sign a student up for an activity as a teacher.

The teacher password is prompted interactively for security reasons
(to avoid exposing it in shell history). Credentials are verified with
a login before the signup is attempted.

Example:
  rollcall signup "Chess Club" daniel@mergington.edu --username ms.wilson`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(args[0], args[1], "signup")
	},
}

// unregisterCmd removes a participant from an activity
var unregisterCmd = &cobra.Command{
	Use:   "unregister <activity> <email>",
	Short: "Remove a participant from an activity",
	Long: `Remove a participant from an activity roster as a teacher.

Example:
  rollcall unregister "Chess Club" daniel@mergington.edu --username ms.wilson`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(args[0], args[1], "unregister")
	},
}

func runMutation(activity, email, action string) error {
	if enrollUsername == "" {
		return fmt.Errorf("--username is required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	ctx := context.Background()
	client := upstream.NewClient(serviceURL, 0)
	creds := models.Credentials{Username: enrollUsername, Secret: password}

	// Verify credentials first so a typo fails with a clear message
	// instead of a per-activity rejection.
	teacher, err := client.Login(ctx, creds)
	if err != nil {
		if rej, ok := upstream.AsRejection(err); ok && rej.Detail != "" {
			return fmt.Errorf("login: %s", rej.Detail)
		}
		return fmt.Errorf("login: %w", err)
	}
	PrintVerbose("logged in as %s", teacher.Name)

	var message string
	switch action {
	case "signup":
		message, err = client.Signup(ctx, creds, activity, email)
	case "unregister":
		message, err = client.Unregister(ctx, creds, activity, email)
	}
	if err != nil {
		if rej, ok := upstream.AsRejection(err); ok && rej.Detail != "" {
			return fmt.Errorf("%s: %s", action, rej.Detail)
		}
		return fmt.Errorf("%s: %w", action, err)
	}

	fmt.Println(message)
	return nil
}

// promptPassword reads a password without echoing when stdin is a
// terminal, falling back to a plain line read otherwise (pipes, tests).
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func init() {
	signupCmd.Flags().StringVarP(&enrollUsername, "username", "u", "", "teacher username")
	unregisterCmd.Flags().StringVarP(&enrollUsername, "username", "u", "", "teacher username")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(unregisterCmd)
}
