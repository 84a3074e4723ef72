// Package leads exposes the lead collection on the CLI.
package leads

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kumaryash98110-netizen/investcore/internal/cli/config"
	"github.com/kumaryash98110-netizen/investcore/records"
	"github.com/kumaryash98110-netizen/investcore/store"
	"github.com/spf13/cobra"
)

func New(rc *config.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage contact leads",
	}

	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newRmCmd(rc),
		newExportCmd(rc),
	)

	return cmd
}

func open(rc *config.RootConfig) (*store.Store[records.Lead], func() error, error) {
	cfg, err := rc.Resolve()
	if err != nil {
		return nil, nil, err
	}
	p, closer, err := rc.OpenProvider()
	if err != nil {
		return nil, nil, err
	}
	return records.OpenLeads(p, cfg.Storage.LeadsKey), closer, nil
}

func newAddCmd(rc *config.RootConfig) *cobra.Command {
	var name, email, phone, note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			saved, err := leads.Add(records.NewLead(name, email, phone, note))
			if err != nil {
				return err
			}
			slog.Debug("lead recorded", "id", saved.ID)
			fmt.Println(saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Lead name")
	cmd.Flags().StringVar(&email, "email", "", "Lead email")
	cmd.Flags().StringVar(&phone, "phone", "", "Lead phone number")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newListCmd(rc *config.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List leads, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCREATED")
			for _, l := range leads.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					l.ID, l.Name, l.Email, l.Phone, l.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
}

func newRmCmd(rc *config.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a lead by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			return leads.Remove(args[0])
		},
	}
}

func newExportCmd(rc *config.RootConfig) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export leads as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			csv := store.MarshalCSV(leads.List())
			if out == "" {
				fmt.Println(csv)
				return nil
			}
			return os.WriteFile(out, []byte(csv), 0644)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write CSV to file instead of stdout")

	return cmd
}
