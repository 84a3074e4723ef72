// Package holdings exposes the portfolio holding collection on the CLI.
package holdings

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kumaryash98110-netizen/investcore/internal/cli/config"
	"github.com/kumaryash98110-netizen/investcore/records"
	"github.com/kumaryash98110-netizen/investcore/store"
	"github.com/spf13/cobra"
)

func New(rc *config.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holdings",
		Short: "Manage portfolio holdings",
	}

	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newRmCmd(rc),
		newExportCmd(rc),
	)

	return cmd
}

func open(rc *config.RootConfig) (*store.Store[records.Holding], func() error, error) {
	cfg, err := rc.Resolve()
	if err != nil {
		return nil, nil, err
	}
	p, closer, err := rc.OpenProvider()
	if err != nil {
		return nil, nil, err
	}
	return records.OpenHoldings(p, cfg.Storage.HoldingsKey), closer, nil
}

func newAddCmd(rc *config.RootConfig) *cobra.Command {
	var name string
	var invested, current float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new holding",
		RunE: func(cmd *cobra.Command, args []string) error {
			holdings, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			saved, err := holdings.Add(records.Holding{
				Name:     name,
				Invested: invested,
				Current:  current,
			})
			if err != nil {
				return err
			}
			fmt.Println(saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holding name")
	cmd.Flags().Float64Var(&invested, "invested", 0, "Amount invested")
	cmd.Flags().Float64Var(&current, "current", 0, "Current value")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newListCmd(rc *config.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List holdings with gain, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			holdings, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tINVESTED\tCURRENT\tGAIN")
			for _, h := range holdings.List() {
				gain := "--"
				if g, err := h.GainPercent(); err == nil {
					gain = fmt.Sprintf("%.2f%%", g)
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\n",
					h.ID, h.Name, h.Invested, h.Current, gain)
			}
			return w.Flush()
		},
	}
}

func newRmCmd(rc *config.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a holding by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			holdings, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			return holdings.Remove(args[0])
		},
	}
}

func newExportCmd(rc *config.RootConfig) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export holdings as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			holdings, closer, err := open(rc)
			if err != nil {
				return err
			}
			defer closer()

			csv := store.MarshalCSV(holdings.List())
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
