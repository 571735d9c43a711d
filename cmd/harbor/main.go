// Command harbor runs the recommendation engine and catalog lookups from
// the terminal, without a database or network access.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/logger"
)

// rootOptions are flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
	jsonOutput  bool
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(o.catalogPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "harbor",
		Short:         "MoneyHarbor command line tools",
		Long:          `Score the investment catalog against a profile, browse the catalog and resolve platform names offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "path to a catalog YAML file (default: embedded catalog)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")

	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	root.AddCommand(newPlatformCmd(opts))
	return root
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Errorf("harbor: %v", err)
		os.Exit(1)
	}
}
