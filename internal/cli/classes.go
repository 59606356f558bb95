package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	hodconsole "github.com/SinghShubhamkumarkrishnadev/hodconsole"
)

func newClassesCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Manage classes and their membership",
	}
	cmd.AddCommand(
		newClassesListCmd(newClient),
		newClassesAssignCmd(newClient),
		newClassesRemoveCmd(newClient),
	)
	return cmd
}

func newClassesListCmd(newClient clientFactory) *cobra.Command {
	var (
		semester int
		division string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List classes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			classes, err := client.Classes().List(cmd.Context(), hodconsole.ClassFilter{
				Semester: semester,
				Division: division,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSEM\tDIV\tPROFESSORS\tSTUDENTS")
			for _, c := range classes {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\n",
					c.ID, c.Name, c.Semester, c.Division, len(c.ProfessorIDs), len(c.StudentIDs))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&semester, "semester", 0, "filter by semester")
	cmd.Flags().StringVar(&division, "division", "", "filter by division")
	return cmd
}

func newClassesAssignCmd(newClient clientFactory) *cobra.Command {
	var professors bool

	cmd := &cobra.Command{
		Use:   "assign <class-id> <member-id>...",
		Short: "Assign students (or professors) to a class",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			classID, ids := args[0], args[1:]
			if professors {
				err = client.Classes().AssignProfessors(cmd.Context(), classID, ids)
			} else {
				err = client.Classes().AssignStudents(cmd.Context(), classID, ids)
			}
			if err != nil {
				return err
			}
			cmd.Printf("Assigned %d member(s) to %s\n", len(ids), classID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&professors, "professors", false, "assign professors instead of students")
	return cmd
}

func newClassesRemoveCmd(newClient clientFactory) *cobra.Command {
	var professors bool

	cmd := &cobra.Command{
		Use:   "remove <class-id> <member-id>...",
		Short: "Remove students (or professors) from a class",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			classID, ids := args[0], args[1:]
			var report hodconsole.BatchReport
			if professors {
				report, err = client.Classes().RemoveProfessors(cmd.Context(), classID, ids,
					hodconsole.OnProgress(progressPrinter(cmd)))
			} else {
				report, err = client.Classes().RemoveStudents(cmd.Context(), classID, ids,
					hodconsole.OnProgress(progressPrinter(cmd)))
			}
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&professors, "professors", false, "remove professors instead of students")
	return cmd
}
