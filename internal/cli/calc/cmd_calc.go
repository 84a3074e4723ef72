// Package calc wires the pure calculation engine into the CLI.
package calc

import (
	"errors"
	"fmt"

	"github.com/kumaryash98110-netizen/investcore/fincalc"
	"github.com/spf13/cobra"
)

// placeholder is printed where a calculation is indeterminate; the web UI
// renders a dash the same way.
const placeholder = "--"

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Financial calculators (EMI, returns, SIP)",
	}

	cmd.AddCommand(
		newEMICmd(),
		newReturnsCmd(),
		newSIPCmd(),
	)

	return cmd
}

func newEMICmd() *cobra.Command {
	var principal, rate, years float64

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Equated monthly installment for a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := fincalc.EMI(principal, rate, years)
			if errors.Is(err, fincalc.ErrIndeterminate) {
				fmt.Printf("monthly payment: %s\n", placeholder)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("monthly payment: %.2f\n", res.MonthlyPayment)
			fmt.Printf("total payment:   %.2f\n", res.TotalPayment)
			fmt.Printf("total interest:  %.2f\n", res.TotalInterest)
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "Loan principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().Float64Var(&years, "years", 0, "Tenure in years")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func newReturnsCmd() *cobra.Command {
	var initial, final, years float64

	cmd := &cobra.Command{
		Use:   "returns",
		Short: "ROI and CAGR for an investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fincalc.Returns(initial, final, years)
			if errors.Is(err, fincalc.ErrIndeterminate) {
				fmt.Printf("roi:  %s\ncagr: %s\n", placeholder, placeholder)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("roi:  %.2f%%\n", m.ROIPercent)
			if m.CAGRValid {
				fmt.Printf("cagr: %.2f%%\n", m.CAGRPercent)
			} else {
				fmt.Printf("cagr: %s\n", placeholder)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&initial, "initial", 0, "Initial investment value")
	cmd.Flags().Float64Var(&final, "final", 0, "Final investment value")
	cmd.Flags().Float64Var(&years, "years", 0, "Holding period in years")
	_ = cmd.MarkFlagRequired("initial")
	_ = cmd.MarkFlagRequired("final")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

func newSIPCmd() *cobra.Command {
	var monthly, rate, years float64

	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Future value of a systematic investment plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			fv, err := fincalc.SIP(monthly, rate, years)
			if errors.Is(err, fincalc.ErrIndeterminate) {
				fmt.Printf("future value: %s\n", placeholder)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("future value: %.2f\n", fv)
			return nil
		},
	}

	cmd.Flags().Float64Var(&monthly, "monthly", 0, "Monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Expected annual return in percent")
	cmd.Flags().Float64Var(&years, "years", 0, "Investment duration in years")
	_ = cmd.MarkFlagRequired("monthly")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
