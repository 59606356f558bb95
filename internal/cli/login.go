package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(newClient clientFactory) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a backend token",
		Long: `Authenticates against the backend and prints the bearer token.

Export the token so later invocations can reuse it:

  export HOD_TOKEN=$(hodctl login --email hod@college.edu)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if email == "" {
				reader := bufio.NewReader(cmd.InOrStdin())
				cmd.PrintErr("Email: ")
				line, readErr := reader.ReadString('\n')
				if readErr != nil {
					return readErr
				}
				email = strings.TrimSpace(line)
			}

			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			hod, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			cmd.PrintErrf("Logged in as %s\n", hod.Name)
			fmt.Fprintln(cmd.OutOrStdout(), client.Token())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "HOD email (prompted when omitted)")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	cmd.PrintErr("Password: ")
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.PrintErrln()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
