package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	hodconsole "github.com/SinghShubhamkumarkrishnadev/hodconsole"
)

func newStudentsCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Manage students",
	}
	cmd.AddCommand(
		newStudentsListCmd(newClient),
		newStudentsUpdateCmd(newClient),
		newStudentsDeleteCmd(newClient),
		newStudentsBatchUpdateCmd(newClient),
		newStudentsBatchDeleteCmd(newClient),
	)
	return cmd
}

func newStudentsListCmd(newClient clientFactory) *cobra.Command {
	var (
		semester int
		division string
		query    string
		sortBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			students, err := client.Students().List(cmd.Context(), hodconsole.StudentFilter{
				Semester: semester,
				Division: division,
				Query:    query,
			}, hodconsole.StudentSort(sortBy))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tENROLLMENT\tSEM\tDIV")
			for _, s := range students {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Enrollment, s.Semester, s.Division)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&semester, "semester", 0, "filter by semester")
	cmd.Flags().StringVar(&division, "division", "", "filter by division")
	cmd.Flags().StringVar(&query, "query", "", "match against name or enrollment number")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort key: name, enrollment or semester")
	return cmd
}

func newStudentsUpdateCmd(newClient clientFactory) *cobra.Command {
	var fieldsJSON string

	cmd := &cobra.Command{
		Use:   "update <student-id>",
		Short: "Update one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldsJSON)
			if err != nil {
				return err
			}
			student, err := client.Students().Update(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			cmd.Printf("Updated %s (sem %d, div %s)\n", student.Name, student.Semester, student.Division)
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", `update fields as JSON, e.g. '{"semester":5,"division":"A"}'`)
	_ = cmd.MarkFlagRequired("fields")
	return cmd
}

func newStudentsDeleteCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <student-id>",
		Short: "Delete one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Students().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func newStudentsBatchUpdateCmd(newClient clientFactory) *cobra.Command {
	var fieldsJSON string

	cmd := &cobra.Command{
		Use:   "batch-update <student-id>...",
		Short: "Apply the same update to many students",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			fields, err := parseFields(fieldsJSON)
			if err != nil {
				return err
			}
			report, err := client.Students().BatchUpdate(cmd.Context(), args, fields,
				hodconsole.OnProgress(progressPrinter(cmd)))
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", `update fields as JSON, e.g. '{"semester":5,"division":"A"}'`)
	_ = cmd.MarkFlagRequired("fields")
	return cmd
}

func newStudentsBatchDeleteCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-delete <student-id>...",
		Short: "Delete many students in one backend call",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			report, err := client.Students().BatchDelete(cmd.Context(), args,
				hodconsole.OnProgress(progressPrinter(cmd)))
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
}

func parseFields(raw string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("invalid --fields JSON: %w", err)
	}
	return fields, nil
}

func progressPrinter(cmd *cobra.Command) func(hodconsole.Progress) {
	return func(p hodconsole.Progress) {
		cmd.PrintErrf("\rprocessed %d/%d", p.Done, p.Total)
		if p.Done == p.Total {
			cmd.PrintErrln()
		}
	}
}

func printReport(cmd *cobra.Command, report hodconsole.BatchReport) {
	cmd.Printf("succeeded: %d, failed: %d\n", len(report.Succeeded), len(report.Failed))
	for _, f := range report.Failed {
		cmd.Printf("  %s: %s\n", f.ID, strings.TrimSpace(f.Err.Error()))
	}
}
