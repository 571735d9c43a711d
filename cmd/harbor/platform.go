package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moneyharbor/internal/platform"
)

func newPlatformCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Resolve financial platform names to verified websites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the verified platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platforms := platform.Default().Platforms()
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, platforms)
			}
			for _, p := range platforms {
				fmt.Fprintf(out, "%-28s %-11s %s\n", p.Name, p.Category, p.URL)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "lookup <name>",
		Short:   "Find the platform matching a name",
		Example: `  harbor platform lookup "bank leumi"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			p, ok := platform.Default().Lookup(name)
			if !ok {
				return fmt.Errorf("no matching platform for %q", name)
			}
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, p)
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n", titleStyle.Render(p.Name), p.Category, p.URL)
			return nil
		},
	})

	return cmd
}
