package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	hodconsole "github.com/SinghShubhamkumarkrishnadev/hodconsole"
)

func newProfessorsCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "professors",
		Short: "Manage professors",
	}
	cmd.AddCommand(
		newProfessorsListCmd(newClient),
		newProfessorsDeleteCmd(newClient),
		newProfessorsBatchDeleteCmd(newClient),
	)
	return cmd
}

func newProfessorsListCmd(newClient clientFactory) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List professors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			professors, err := client.Professors().List(cmd.Context(), hodconsole.ProfessorFilter{Query: query})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCLASSES")
			for _, p := range professors {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Email, strings.Join(p.ClassIDs, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "match against name or email")
	return cmd
}

func newProfessorsDeleteCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <professor-id>",
		Short: "Delete one professor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Professors().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func newProfessorsBatchDeleteCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-delete <professor-id>...",
		Short: "Delete many professors in one backend call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			report, err := client.Professors().BatchDelete(cmd.Context(), args,
				hodconsole.OnProgress(progressPrinter(cmd)))
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}
