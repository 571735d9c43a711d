package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the investment catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every catalog option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, cat.Options())
			}
			for _, opt := range cat.Options() {
				horizons := make([]string, len(opt.TimeHorizon))
				for i, h := range opt.TimeHorizon {
					horizons[i] = string(h)
				}
				fmt.Fprintf(out, "%-24s %-34s risk=%-6s liquidity=%-6s horizon=%s\n",
					opt.ID, opt.Name, opt.RiskLevel, opt.Liquidity, strings.Join(horizons, ","))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}
			opt, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no catalog option with id %q", args[0])
			}
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, opt)
			}
			fmt.Fprintln(out, titleStyle.Render(opt.Name))
			field(out, "Description", opt.Description)
			field(out, "Risk", string(opt.RiskLevel))
			field(out, "Liquidity", string(opt.Liquidity))
			if opt.MinAmount != nil {
				field(out, "Minimum", opt.MinAmount.StringFixed(0))
			}
			if opt.ExpectedReturn != nil {
				field(out, "Expected return", fmt.Sprintf("%.1f%%", *opt.ExpectedReturn))
			}
			field(out, "Pros", strings.Join(opt.Pros, "; "))
			field(out, "Cons", strings.Join(opt.Cons, "; "))
			if opt.ActionSteps != nil {
				field(out, "Platforms", strings.Join(opt.ActionSteps.Platforms, ", "))
				field(out, "How to start", opt.ActionSteps.HowToStart)
				field(out, "Costs", opt.ActionSteps.Costs)
			}
			return nil
		},
	})

	return cmd
}
