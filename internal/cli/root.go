// Package cli implements the hodctl command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hodconsole "github.com/SinghShubhamkumarkrishnadev/hodconsole"
)

// NewRootCmd creates the root command for the hodctl CLI.
func NewRootCmd(ver string) *cobra.Command {
	var (
		baseURL     string
		token       string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:           "hodctl",
		Short:         "Department console CLI",
		Long:          "hodctl manages students, professors and classes against the college backend.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&baseURL, "base-url", envOr("HOD_BASE_URL", ""),
		"backend base URL (env: HOD_BASE_URL)")
	cmd.PersistentFlags().StringVar(&token, "token", os.Getenv("HOD_TOKEN"),
		"bearer token from a previous login (env: HOD_TOKEN)")
	cmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0,
		"batch worker count (0 uses the client default)")

	newClient := func() (*hodconsole.Client, error) {
		if baseURL == "" {
			return nil, fmt.Errorf("--base-url (or HOD_BASE_URL) is required")
		}
		opts := []hodconsole.Option{}
		if token != "" {
			opts = append(opts, hodconsole.WithToken(token))
		}
		if concurrency > 0 {
			opts = append(opts, hodconsole.WithConcurrency(concurrency))
		}
		return hodconsole.New(baseURL, opts...)
	}

	cmd.AddCommand(
		newLoginCmd(newClient),
		newStudentsCmd(newClient),
		newProfessorsCmd(newClient),
		newClassesCmd(newClient),
	)
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// clientFactory builds a configured SDK client from the persistent flags.
type clientFactory func() (*hodconsole.Client, error)
